package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/versionverse/backend/internal/track/domain"
)

type UpdateRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Update, error)
	FindForUser(ctx context.Context, userID, id string) (domain.Update, error)
	Create(ctx context.Context, update domain.Update) (domain.Update, error)
	Update(ctx context.Context, userID string, update domain.Update) (domain.Update, error)
	Delete(ctx context.Context, userID, id string) (domain.Update, error)
}

type PgUpdateRepository struct {
	pool *pgxpool.Pool
}

func NewPgUpdateRepository(pool *pgxpool.Pool) *PgUpdateRepository {
	return &PgUpdateRepository{pool: pool}
}

// Ownership is never stored on updates; every query joins through the
// owning product and re-derives it.
func (r *PgUpdateRepository) ListByUser(ctx context.Context, userID string) ([]domain.Update, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT u.id, u.title, u.body, u.status, COALESCE(u.version, ''), u.product_id, u.created_at, u.updated_at
		 FROM updates u
		 JOIN products p ON p.id = u.product_id
		 WHERE p.user_id = $1
		 ORDER BY u.created_at, u.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	defer rows.Close()

	updates := []domain.Update{}
	for rows.Next() {
		var u domain.Update
		if err := rows.Scan(&u.ID, &u.Title, &u.Body, &u.Status, &u.Version, &u.ProductID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan update: %w", err)
		}
		updates = append(updates, u)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return updates, nil
}

func (r *PgUpdateRepository) FindForUser(ctx context.Context, userID, id string) (domain.Update, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT u.id, u.title, u.body, u.status, COALESCE(u.version, ''), u.product_id, u.created_at, u.updated_at
		 FROM updates u
		 JOIN products p ON p.id = u.product_id
		 WHERE u.id = $1 AND p.user_id = $2`,
		id,
		userID,
	)

	var u domain.Update
	err := row.Scan(&u.ID, &u.Title, &u.Body, &u.Status, &u.Version, &u.ProductID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Update{}, ErrNotOwned
		}
		return domain.Update{}, fmt.Errorf("failed to find update: %w", err)
	}

	return u, nil
}

func (r *PgUpdateRepository) Create(ctx context.Context, update domain.Update) (domain.Update, error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO updates (id, title, body, status, version, product_id)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING created_at, updated_at`,
		update.ID,
		update.Title,
		update.Body,
		string(update.Status),
		update.Version,
		update.ProductID,
	)

	if err := row.Scan(&update.CreatedAt, &update.UpdatedAt); err != nil {
		return domain.Update{}, fmt.Errorf("failed to create update: %w", err)
	}

	return update, nil
}

func (r *PgUpdateRepository) Update(ctx context.Context, userID string, update domain.Update) (domain.Update, error) {
	row := r.pool.QueryRow(
		ctx,
		`UPDATE updates u
		 SET title = $1, body = $2, status = $3, version = NULLIF($4, ''), updated_at = now()
		 FROM products p
		 WHERE u.id = $5 AND p.id = u.product_id AND p.user_id = $6
		 RETURNING u.id, u.title, u.body, u.status, COALESCE(u.version, ''), u.product_id, u.created_at, u.updated_at`,
		update.Title,
		update.Body,
		string(update.Status),
		update.Version,
		update.ID,
		userID,
	)

	var u domain.Update
	err := row.Scan(&u.ID, &u.Title, &u.Body, &u.Status, &u.Version, &u.ProductID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Update{}, ErrNotOwned
		}
		return domain.Update{}, fmt.Errorf("failed to update update: %w", err)
	}

	return u, nil
}

func (r *PgUpdateRepository) Delete(ctx context.Context, userID, id string) (domain.Update, error) {
	row := r.pool.QueryRow(
		ctx,
		`DELETE FROM updates u
		 USING products p
		 WHERE u.id = $1 AND p.id = u.product_id AND p.user_id = $2
		 RETURNING u.id, u.title, u.body, u.status, COALESCE(u.version, ''), u.product_id, u.created_at, u.updated_at`,
		id,
		userID,
	)

	var u domain.Update
	err := row.Scan(&u.ID, &u.Title, &u.Body, &u.Status, &u.Version, &u.ProductID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Update{}, ErrNotOwned
		}
		return domain.Update{}, fmt.Errorf("failed to delete update: %w", err)
	}

	return u, nil
}
