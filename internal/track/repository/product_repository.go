package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/versionverse/backend/internal/track/domain"
)

// ErrNotOwned is returned when a record does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable.
var ErrNotOwned = errors.New("record not found for this user")

type ProductRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
	FindForUser(ctx context.Context, userID, id string) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, userID, id, name string) (domain.Product, error)
	Delete(ctx context.Context, userID, id string) (domain.Product, error)
}

type PgProductRepository struct {
	pool *pgxpool.Pool
}

func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

func (r *PgProductRepository) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, name, user_id, created_at
		 FROM products
		 WHERE user_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rows.Err())
	}

	return products, nil
}

func (r *PgProductRepository) FindForUser(ctx context.Context, userID, id string) (domain.Product, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, name, user_id, created_at
		 FROM products
		 WHERE id = $1 AND user_id = $2`,
		id,
		userID,
	)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, ErrNotOwned
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return p, nil
}

func (r *PgProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO products (id, name, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		product.ID,
		product.Name,
		product.UserID,
	)

	if err := row.Scan(&product.CreatedAt); err != nil {
		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (r *PgProductRepository) Update(ctx context.Context, userID, id, name string) (domain.Product, error) {
	row := r.pool.QueryRow(
		ctx,
		`UPDATE products
		 SET name = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, name, user_id, created_at`,
		name,
		id,
		userID,
	)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, ErrNotOwned
		}
		return domain.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

func (r *PgProductRepository) Delete(ctx context.Context, userID, id string) (domain.Product, error) {
	row := r.pool.QueryRow(
		ctx,
		`DELETE FROM products
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, name, user_id, created_at`,
		id,
		userID,
	)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, ErrNotOwned
		}
		return domain.Product{}, fmt.Errorf("failed to delete product: %w", err)
	}

	return p, nil
}
