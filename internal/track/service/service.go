package service

import (
	"context"
	"errors"

	commoncrypto "github.com/versionverse/backend/internal/common/crypto"
	commonerrors "github.com/versionverse/backend/internal/common/errors"
	"github.com/versionverse/backend/internal/common/logger"
	"github.com/versionverse/backend/internal/track/domain"
	"github.com/versionverse/backend/internal/track/repository"
)

type Service struct {
	resolver    *Resolver
	products    repository.ProductRepository
	updates     repository.UpdateRepository
	points      repository.UpdatePointRepository
	idGenerator commoncrypto.IDGenerator
	log         *logger.Logger
}

func New(
	resolver *Resolver,
	products repository.ProductRepository,
	updates repository.UpdateRepository,
	points repository.UpdatePointRepository,
	idGenerator commoncrypto.IDGenerator,
	log *logger.Logger,
) *Service {
	return &Service{
		resolver:    resolver,
		products:    products,
		updates:     updates,
		points:      points,
		idGenerator: idGenerator,
		log:         log,
	}
}

func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// Products

func (s *Service) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.products.ListByUser(ctx, userID)
	if err != nil {
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, userID, id string) (domain.Product, error) {
	return s.resolver.ResolveProduct(ctx, userID, id)
}

func (s *Service) CreateProduct(ctx context.Context, userID, name string) (domain.Product, error) {
	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.Product{}, commonerrors.ErrInternalError.WithCause(err)
	}

	product, err := s.products.Create(ctx, domain.Product{
		ID:     id,
		Name:   name,
		UserID: userID,
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "create_product_failed",
		}).Errorf("create product failed: %v", err)
		return domain.Product{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":    userID,
		"product_id": product.ID,
		"action":     "product_created",
	}).Info("product created")

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, userID, id, name string) (domain.Product, error) {
	product, err := s.products.Update(ctx, userID, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Product{}, commonerrors.ErrProductNotFound
		}
		return domain.Product{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, userID, id string) (domain.Product, error) {
	product, err := s.products.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Product{}, commonerrors.ErrProductNotFound
		}
		return domain.Product{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":    userID,
		"product_id": id,
		"action":     "product_deleted",
	}).Info("product deleted")

	return product, nil
}

// Updates

type CreateUpdateInput struct {
	Title     string
	Body      string
	Status    string
	Version   string
	ProductID string
}

type UpdateUpdateInput struct {
	Title   *string
	Body    *string
	Status  *string
	Version *string
}

func (s *Service) ListUpdates(ctx context.Context, userID string) ([]domain.Update, error) {
	updates, err := s.updates.ListByUser(ctx, userID)
	if err != nil {
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return updates, nil
}

func (s *Service) GetUpdate(ctx context.Context, userID, id string) (domain.Update, error) {
	return s.resolver.ResolveUpdate(ctx, userID, id)
}

func (s *Service) CreateUpdate(ctx context.Context, userID string, input CreateUpdateInput) (domain.Update, error) {
	// The parent product must already belong to the caller; a product that
	// exists under another user is reported as absent.
	product, err := s.resolver.ResolveProduct(ctx, userID, input.ProductID)
	if err != nil {
		return domain.Update{}, err
	}

	status := domain.Status(input.Status)
	if input.Status == "" {
		status = domain.StatusInProgress
	}
	if !status.Valid() {
		return domain.Update{}, commonerrors.ErrInvalidStatus
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.Update{}, commonerrors.ErrInternalError.WithCause(err)
	}

	update, err := s.updates.Create(ctx, domain.Update{
		ID:        id,
		Title:     input.Title,
		Body:      input.Body,
		Status:    status,
		Version:   input.Version,
		ProductID: product.ID,
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":    userID,
			"product_id": product.ID,
			"action":     "create_update_failed",
		}).Errorf("create update failed: %v", err)
		return domain.Update{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":    userID,
		"product_id": product.ID,
		"update_id":  update.ID,
		"action":     "update_created",
	}).Info("update created")

	return update, nil
}

func (s *Service) UpdateUpdate(ctx context.Context, userID, id string, input UpdateUpdateInput) (domain.Update, error) {
	current, err := s.resolver.ResolveUpdate(ctx, userID, id)
	if err != nil {
		return domain.Update{}, err
	}

	// Partial merge: only fields present in the payload change.
	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.Body != nil {
		current.Body = *input.Body
	}
	if input.Status != nil {
		status := domain.Status(*input.Status)
		if !status.Valid() {
			return domain.Update{}, commonerrors.ErrInvalidStatus
		}
		current.Status = status
	}
	if input.Version != nil {
		current.Version = *input.Version
	}

	updated, err := s.updates.Update(ctx, userID, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Update{}, commonerrors.ErrUpdateNotFound
		}
		return domain.Update{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	return updated, nil
}

func (s *Service) DeleteUpdate(ctx context.Context, userID, id string) (domain.Update, error) {
	update, err := s.updates.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.Update{}, commonerrors.ErrUpdateNotFound
		}
		return domain.Update{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id":   userID,
		"update_id": id,
		"action":    "update_deleted",
	}).Info("update deleted")

	return update, nil
}

// Update points

type CreateUpdatePointInput struct {
	Name        string
	Description string
	UpdateID    string
}

type UpdateUpdatePointInput struct {
	Name        *string
	Description *string
}

func (s *Service) ListUpdatePoints(ctx context.Context, userID string) ([]domain.UpdatePoint, error) {
	points, err := s.points.ListByUser(ctx, userID)
	if err != nil {
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return points, nil
}

func (s *Service) GetUpdatePoint(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	return s.resolver.ResolveUpdatePoint(ctx, userID, id)
}

func (s *Service) CreateUpdatePoint(ctx context.Context, userID string, input CreateUpdatePointInput) (domain.UpdatePoint, error) {
	update, err := s.resolver.ResolveUpdate(ctx, userID, input.UpdateID)
	if err != nil {
		return domain.UpdatePoint{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.UpdatePoint{}, commonerrors.ErrInternalError.WithCause(err)
	}

	point, err := s.points.Create(ctx, domain.UpdatePoint{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		UpdateID:    update.ID,
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":   userID,
			"update_id": update.ID,
			"action":    "create_update_point_failed",
		}).Errorf("create update point failed: %v", err)
		return domain.UpdatePoint{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	return point, nil
}

func (s *Service) UpdateUpdatePoint(ctx context.Context, userID, id string, input UpdateUpdatePointInput) (domain.UpdatePoint, error) {
	current, err := s.resolver.ResolveUpdatePoint(ctx, userID, id)
	if err != nil {
		return domain.UpdatePoint{}, err
	}

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Description != nil {
		current.Description = *input.Description
	}

	updated, err := s.points.Update(ctx, userID, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.UpdatePoint{}, commonerrors.ErrUpdatePointNotFound
		}
		return domain.UpdatePoint{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	return updated, nil
}

func (s *Service) DeleteUpdatePoint(ctx context.Context, userID, id string) (domain.UpdatePoint, error) {
	point, err := s.points.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			return domain.UpdatePoint{}, commonerrors.ErrUpdatePointNotFound
		}
		return domain.UpdatePoint{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	return point, nil
}
