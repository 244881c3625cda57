// File: services/catalog/catalog_test.go
package catalog

import (
	"context"
	"testing"

	serviceRepo "nafis/database/repository/service"
	"nafis/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memServiceRepo struct {
	services []models.Service
}

func (m *memServiceRepo) List(_ context.Context, filter models.ServiceFilter) ([]models.Service, int, error) {
	var matched []models.Service
	for _, svc := range m.services {
		if !svc.IsActive {
			continue
		}
		if filter.Category != "" && svc.Category != filter.Category {
			continue
		}
		if filter.Popular && !svc.IsPopular {
			continue
		}
		if filter.Featured && !svc.IsFeatured {
			continue
		}
		matched = append(matched, svc)
	}

	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}

func (m *memServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	for i := range m.services {
		if m.services[i].ID == id {
			cp := m.services[i]
			return &cp, nil
		}
	}
	return nil, serviceRepo.ErrNotFound
}

func (m *memServiceRepo) Create(_ context.Context, svc models.Service) error {
	m.services = append(m.services, svc)
	return nil
}

func (m *memServiceRepo) Update(_ context.Context, svc models.Service) (*models.Service, error) {
	for i := range m.services {
		if m.services[i].ID == svc.ID {
			m.services[i] = svc
			return &svc, nil
		}
	}
	return nil, serviceRepo.ErrNotFound
}

func (m *memServiceRepo) Delete(_ context.Context, id string) error {
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return serviceRepo.ErrNotFound
}

func (m *memServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.services)), nil
}

func TestSeedIfEmpty(t *testing.T) {
	repo := &memServiceRepo{}
	svc := NewDefaultCatalogService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedIfEmpty(ctx))
	assert.Len(t, repo.services, 3)

	// A second call must not duplicate the catalog.
	require.NoError(t, svc.SeedIfEmpty(ctx))
	assert.Len(t, repo.services, 3)
}

func TestListServicesPagination(t *testing.T) {
	repo := &memServiceRepo{}
	svc := NewDefaultCatalogService(repo)
	ctx := context.Background()
	require.NoError(t, svc.SeedIfEmpty(ctx))

	page, err := svc.ListServices(ctx, models.ServiceFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Services, 2)
	assert.Equal(t, 1, page.Pagination.Current)
	assert.Equal(t, 2, page.Pagination.Total)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)

	page, err = svc.ListServices(ctx, models.ServiceFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Services, 1)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestListServicesByCategory(t *testing.T) {
	repo := &memServiceRepo{}
	svc := NewDefaultCatalogService(repo)
	ctx := context.Background()
	require.NoError(t, svc.SeedIfEmpty(ctx))

	page, err := svc.ListServices(ctx, models.ServiceFilter{Category: models.CategoryTherapeutic})
	require.NoError(t, err)
	require.Len(t, page.Services, 1)
	assert.Equal(t, "Deep Tissue Foot Work", page.Services[0].Name)
}

func TestCreateServiceValidation(t *testing.T) {
	repo := &memServiceRepo{}
	svc := NewDefaultCatalogService(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		in   models.Service
	}{
		{"missing name", models.Service{Category: models.CategoryWellness, DurationMinutes: 30, Price: 40}},
		{"bad category", models.Service{Name: "X", Category: "mystery", DurationMinutes: 30, Price: 40}},
		{"zero duration", models.Service{Name: "X", Category: models.CategoryWellness, Price: 40}},
		{"negative price", models.Service{Name: "X", Category: models.CategoryWellness, DurationMinutes: 30, Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService(ctx, tc.in)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, repo.services)
}

func TestCreateServiceAssignsID(t *testing.T) {
	repo := &memServiceRepo{}
	svc := NewDefaultCatalogService(repo)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, models.Service{
		Name:            "Aromatherapy Session",
		Category:        models.CategoryWellness,
		DurationMinutes: 45,
		Price:           65,
		IsActive:        true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aromatherapy Session", got.Name)
}
