package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/versionverse/backend/internal/track/domain"
)

type UpdatePointRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.UpdatePoint, error)
	FindForUser(ctx context.Context, userID, id string) (domain.UpdatePoint, error)
	Create(ctx context.Context, point domain.UpdatePoint) (domain.UpdatePoint, error)
	Update(ctx context.Context, userID string, point domain.UpdatePoint) (domain.UpdatePoint, error)
	Delete(ctx context.Context, userID, id string) (domain.UpdatePoint, error)
}

type PgUpdatePointRepository struct {
	pool *pgxpool.Pool
}

func NewPgUpdatePointRepository(pool *pgxpool.Pool) *PgUpdatePointRepository {
	return &PgUpdatePointRepository{pool: pool}
}

// The transitive owner sits two levels up: update point -> update -> product.
func (r *PgUpdatePointRepository) ListByUser(ctx context.Context, userID string) ([]domain.UpdatePoint, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT up.id, up.name, up.description, up.update_id, up.created_at, up.updated_at
		 FROM update_points up
		 JOIN updates u ON u.id = up.update_id
		 JOIN products p ON p.id = u.product_id
		 WHERE p.user_id = $1
		 ORDER BY up.created_at, up.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list update points: %w", err)
	}
	defer rows.Close()

	points := []domain.UpdatePoint{}
	for rows.Next() {
		var up domain.UpdatePoint
		if err := rows.Scan(&up.ID, &up.Name, &up.Description, &up.UpdateID, &up.CreatedAt, &up.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan update point: %w", err)
		}
		points = append(points, up)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return points, nil
}

func (r *PgUpdatePointRepository) FindForUser(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT up.id, up.name, up.description, up.update_id, up.created_at, up.updated_at
		 FROM update_points up
		 JOIN updates u ON u.id = up.update_id
		 JOIN products p ON p.id = u.product_id
		 WHERE up.id = $1 AND p.user_id = $2`,
		id,
		userID,
	)

	var up domain.UpdatePoint
	err := row.Scan(&up.ID, &up.Name, &up.Description, &up.UpdateID, &up.CreatedAt, &up.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpdatePoint{}, ErrNotOwned
		}
		return domain.UpdatePoint{}, fmt.Errorf("failed to find update point: %w", err)
	}

	return up, nil
}

func (r *PgUpdatePointRepository) Create(ctx context.Context, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO update_points (id, name, description, update_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		point.ID,
		point.Name,
		point.Description,
		point.UpdateID,
	)

	if err := row.Scan(&point.CreatedAt, &point.UpdatedAt); err != nil {
		return domain.UpdatePoint{}, fmt.Errorf("failed to create update point: %w", err)
	}

	return point, nil
}

func (r *PgUpdatePointRepository) Update(ctx context.Context, userID string, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	row := r.pool.QueryRow(
		ctx,
		`UPDATE update_points up
		 SET name = $1, description = $2, updated_at = now()
		 FROM updates u, products p
		 WHERE up.id = $3 AND u.id = up.update_id AND p.id = u.product_id AND p.user_id = $4
		 RETURNING up.id, up.name, up.description, up.update_id, up.created_at, up.updated_at`,
		point.Name,
		point.Description,
		point.ID,
		userID,
	)

	var up domain.UpdatePoint
	err := row.Scan(&up.ID, &up.Name, &up.Description, &up.UpdateID, &up.CreatedAt, &up.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpdatePoint{}, ErrNotOwned
		}
		return domain.UpdatePoint{}, fmt.Errorf("failed to update update point: %w", err)
	}

	return up, nil
}

func (r *PgUpdatePointRepository) Delete(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	row := r.pool.QueryRow(
		ctx,
		`DELETE FROM update_points up
		 USING updates u, products p
		 WHERE up.id = $1 AND u.id = up.update_id AND p.id = u.product_id AND p.user_id = $2
		 RETURNING up.id, up.name, up.description, up.update_id, up.created_at, up.updated_at`,
		id,
		userID,
	)

	var up domain.UpdatePoint
	err := row.Scan(&up.ID, &up.Name, &up.Description, &up.UpdateID, &up.CreatedAt, &up.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpdatePoint{}, ErrNotOwned
		}
		return domain.UpdatePoint{}, fmt.Errorf("failed to delete update point: %w", err)
	}

	return up, nil
}
