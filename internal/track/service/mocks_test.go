package service

import (
	"context"

	"github.com/versionverse/backend/internal/track/domain"
)

type mockProductRepo struct {
	listByUserFunc  func(ctx context.Context, userID string) ([]domain.Product, error)
	findForUserFunc func(ctx context.Context, userID, id string) (domain.Product, error)
	createFunc      func(ctx context.Context, product domain.Product) (domain.Product, error)
	updateFunc      func(ctx context.Context, userID, id, name string) (domain.Product, error)
	deleteFunc      func(ctx context.Context, userID, id string) (domain.Product, error)
}

func (m *mockProductRepo) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	return m.listByUserFunc(ctx, userID)
}

func (m *mockProductRepo) FindForUser(ctx context.Context, userID, id string) (domain.Product, error) {
	return m.findForUserFunc(ctx, userID, id)
}

func (m *mockProductRepo) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	return m.createFunc(ctx, product)
}

func (m *mockProductRepo) Update(ctx context.Context, userID, id, name string) (domain.Product, error) {
	return m.updateFunc(ctx, userID, id, name)
}

func (m *mockProductRepo) Delete(ctx context.Context, userID, id string) (domain.Product, error) {
	return m.deleteFunc(ctx, userID, id)
}

type mockUpdateRepo struct {
	listByUserFunc  func(ctx context.Context, userID string) ([]domain.Update, error)
	findForUserFunc func(ctx context.Context, userID, id string) (domain.Update, error)
	createFunc      func(ctx context.Context, update domain.Update) (domain.Update, error)
	updateFunc      func(ctx context.Context, userID string, update domain.Update) (domain.Update, error)
	deleteFunc      func(ctx context.Context, userID, id string) (domain.Update, error)
}

func (m *mockUpdateRepo) ListByUser(ctx context.Context, userID string) ([]domain.Update, error) {
	return m.listByUserFunc(ctx, userID)
}

func (m *mockUpdateRepo) FindForUser(ctx context.Context, userID, id string) (domain.Update, error) {
	return m.findForUserFunc(ctx, userID, id)
}

func (m *mockUpdateRepo) Create(ctx context.Context, update domain.Update) (domain.Update, error) {
	return m.createFunc(ctx, update)
}

func (m *mockUpdateRepo) Update(ctx context.Context, userID string, update domain.Update) (domain.Update, error) {
	return m.updateFunc(ctx, userID, update)
}

func (m *mockUpdateRepo) Delete(ctx context.Context, userID, id string) (domain.Update, error) {
	return m.deleteFunc(ctx, userID, id)
}

type mockUpdatePointRepo struct {
	listByUserFunc  func(ctx context.Context, userID string) ([]domain.UpdatePoint, error)
	findForUserFunc func(ctx context.Context, userID, id string) (domain.UpdatePoint, error)
	createFunc      func(ctx context.Context, point domain.UpdatePoint) (domain.UpdatePoint, error)
	updateFunc      func(ctx context.Context, userID string, point domain.UpdatePoint) (domain.UpdatePoint, error)
	deleteFunc      func(ctx context.Context, userID, id string) (domain.UpdatePoint, error)
}

func (m *mockUpdatePointRepo) ListByUser(ctx context.Context, userID string) ([]domain.UpdatePoint, error) {
	return m.listByUserFunc(ctx, userID)
}

func (m *mockUpdatePointRepo) FindForUser(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	return m.findForUserFunc(ctx, userID, id)
}

func (m *mockUpdatePointRepo) Create(ctx context.Context, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	return m.createFunc(ctx, point)
}

func (m *mockUpdatePointRepo) Update(ctx context.Context, userID string, point domain.UpdatePoint) (domain.UpdatePoint, error) {
	return m.updateFunc(ctx, userID, point)
}

func (m *mockUpdatePointRepo) Delete(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	return m.deleteFunc(ctx, userID, id)
}
