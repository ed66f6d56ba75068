package http

import (
	"context"
	"sync"
	"time"

	"github.com/versionverse/backend/internal/track/domain"
	"github.com/versionverse/backend/internal/track/repository"
)

// In-memory store mirroring the ownership semantics of the SQL
// repositories: every lookup and mutation is scoped to the transitive
// owner, and a non-owned record behaves exactly like a missing one.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]domain.Product
	updates  map[string]domain.Update
	points   map[string]domain.UpdatePoint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]domain.Product),
		updates:  make(map[string]domain.Update),
		points:   make(map[string]domain.UpdatePoint),
	}
}

func (s *fakeStore) productOwner(productID string) (string, bool) {
	p, ok := s.products[productID]
	if !ok {
		return "", false
	}
	return p.UserID, true
}

func (s *fakeStore) updateOwner(updateID string) (string, bool) {
	u, ok := s.updates[updateID]
	if !ok {
		return "", false
	}
	return s.productOwner(u.ProductID)
}

func (s *fakeStore) pointOwner(pointID string) (string, bool) {
	pt, ok := s.points[pointID]
	if !ok {
		return "", false
	}
	return s.updateOwner(pt.UpdateID)
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products := []domain.Product{}
	for _, p := range r.store.products {
		if p.UserID == userID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) FindForUser(ctx context.Context, userID, id string) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok || p.UserID != userID {
		return domain.Product{}, repository.ErrNotOwned
	}
	return p, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product.CreatedAt = time.Now()
	r.store.products[product.ID] = product
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, userID, id, name string) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok || p.UserID != userID {
		return domain.Product{}, repository.ErrNotOwned
	}
	p.Name = name
	r.store.products[id] = p
	return p, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, userID, id string) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok || p.UserID != userID {
		return domain.Product{}, repository.ErrNotOwned
	}
	delete(r.store.products, id)
	return p, nil
}

type fakeUpdateRepo struct{ store *fakeStore }

func (r *fakeUpdateRepo) ListByUser(ctx context.Context, userID string) ([]domain.Update, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	updates := []domain.Update{}
	for _, u := range r.store.updates {
		if owner, ok := r.store.productOwner(u.ProductID); ok && owner == userID {
			updates = append(updates, u)
		}
	}
	return updates, nil
}

func (r *fakeUpdateRepo) FindForUser(ctx context.Context, userID, id string) (domain.Update, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.updateOwner(id); !ok || owner != userID {
		return domain.Update{}, repository.ErrNotOwned
	}
	return r.store.updates[id], nil
}

func (r *fakeUpdateRepo) Create(ctx context.Context, update domain.Update) (domain.Update, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	update.CreatedAt = now
	update.UpdatedAt = now
	r.store.updates[update.ID] = update
	return update, nil
}

func (r *fakeUpdateRepo) Update(ctx context.Context, userID string, update domain.Update) (domain.Update, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.updateOwner(update.ID); !ok || owner != userID {
		return domain.Update{}, repository.ErrNotOwned
	}
	current := r.store.updates[update.ID]
	update.ProductID = current.ProductID
	update.CreatedAt = current.CreatedAt
	update.UpdatedAt = time.Now()
	r.store.updates[update.ID] = update
	return update, nil
}

func (r *fakeUpdateRepo) Delete(ctx context.Context, userID, id string) (domain.Update, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.updateOwner(id); !ok || owner != userID {
		return domain.Update{}, repository.ErrNotOwned
	}
	u := r.store.updates[id]
	delete(r.store.updates, id)
	return u, nil
}

type fakeUpdatePointRepo struct{ store *fakeStore }

func (r *fakeUpdatePointRepo) ListByUser(ctx context.Context, userID string) ([]domain.UpdatePoint, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	points := []domain.UpdatePoint{}
	for _, pt := range r.store.points {
		if owner, ok := r.store.updateOwner(pt.UpdateID); ok && owner == userID {
			points = append(points, pt)
		}
	}
	return points, nil
}

func (r *fakeUpdatePointRepo) FindForUser(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.pointOwner(id); !ok || owner != userID {
		return domain.UpdatePoint{}, repository.ErrNotOwned
	}
	return r.store.points[id], nil
}

func (r *fakeUpdatePointRepo) Create(ctx context.Context, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	point.CreatedAt = now
	point.UpdatedAt = now
	r.store.points[point.ID] = point
	return point, nil
}

func (r *fakeUpdatePointRepo) Update(ctx context.Context, userID string, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.pointOwner(point.ID); !ok || owner != userID {
		return domain.UpdatePoint{}, repository.ErrNotOwned
	}
	current := r.store.points[point.ID]
	point.UpdateID = current.UpdateID
	point.CreatedAt = current.CreatedAt
	point.UpdatedAt = time.Now()
	r.store.points[point.ID] = point
	return point, nil
}

func (r *fakeUpdatePointRepo) Delete(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.pointOwner(id); !ok || owner != userID {
		return domain.UpdatePoint{}, repository.ErrNotOwned
	}
	pt := r.store.points[id]
	delete(r.store.points, id)
	return pt, nil
}
