package service

import (
	"context"
	"errors"

	commonerrors "github.com/versionverse/backend/internal/common/errors"
	"github.com/versionverse/backend/internal/track/domain"
	"github.com/versionverse/backend/internal/track/repository"
)

// Resolver answers exactly one question: does this identity transitively
// own this record? A record that exists but belongs to someone else
// resolves the same way as a record that does not exist at all, so
// existence is never leaked across tenants.
type Resolver struct {
	products repository.ProductRepository
	updates  repository.UpdateRepository
	points   repository.UpdatePointRepository
}

func NewResolver(
	products repository.ProductRepository,
	updates repository.UpdateRepository,
	points repository.UpdatePointRepository,
) *Resolver {
	return &Resolver{
		products: products,
		updates:  updates,
		points:   points,
	}
}

func (r *Resolver) ResolveProduct(ctx context.Context, userID, id string) (domain.Product, error) {
	product, err := r.products.FindForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Product{}, commonerrors.ErrProductNotFound
		}
		return domain.Product{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return product, nil
}

func (r *Resolver) ResolveUpdate(ctx context.Context, userID, id string) (domain.Update, error) {
	update, err := r.updates.FindForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Update{}, commonerrors.ErrUpdateNotFound
		}
		return domain.Update{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return update, nil
}

func (r *Resolver) ResolveUpdatePoint(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	point, err := r.points.FindForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.UpdatePoint{}, commonerrors.ErrUpdatePointNotFound
		}
		return domain.UpdatePoint{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return point, nil
}
