// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"time"

	serviceRepo "nafis/database/repository/service"
	"nafis/models"
	"nafis/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound mirrors the repository sentinel for callers of this package.
var ErrNotFound = serviceRepo.ErrNotFound

// CatalogService manages the treatment catalog shown on the site and edited
// from the admin dashboard.
type CatalogService interface {
	ListServices(ctx context.Context, filter models.ServiceFilter) (*models.ServicePage, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, svc models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context) error
}

// DefaultCatalogService implements CatalogService over the service repository.
type DefaultCatalogService struct {
	repo serviceRepo.ServiceRepository
}

// NewDefaultCatalogService wires the catalog service.
func NewDefaultCatalogService(repo serviceRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{repo: repo}
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, filter models.ServiceFilter) (*models.ServicePage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	services, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := total / filter.Limit
	if total%filter.Limit != 0 {
		pages++
	}
	return &models.ServicePage{
		Services: services,
		Pagination: models.Pagination{
			Current: filter.Page,
			Total:   pages,
			HasNext: filter.Page < pages,
			HasPrev: filter.Page > 1,
		},
	}, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, svc models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, svc models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, svc)
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SeedIfEmpty loads the sample treatments into an empty catalog so a fresh
// deployment has something to book.
func (s *DefaultCatalogService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, svc := range SampleServices() {
		if err := s.repo.Create(ctx, svc); err != nil {
			return fmt.Errorf("catalog: seeding %q: %w", svc.Name, err)
		}
	}
	utils.GetLogger().Info("Seeded treatment catalog", zap.Int("services", len(SampleServices())))
	return nil
}

func validateService(svc models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("catalog: service name is required")
	}
	switch svc.Category {
	case models.CategoryRelaxation, models.CategoryTherapeutic, models.CategoryWellness, models.CategoryPremium:
	default:
		return fmt.Errorf("catalog: unknown category %q", svc.Category)
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("catalog: duration must be positive")
	}
	if svc.Price < 0 {
		return fmt.Errorf("catalog: price must not be negative")
	}
	return nil
}
