// File: services/settings/settings.go
package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "nafis/database/repository/settings"
	"nafis/models"
)

// SettingsService reads and updates the singleton site settings.
type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, s models.Settings) (*models.Settings, error)
}

// DefaultSettingsService implements SettingsService over the repository,
// falling back to the built-in defaults until an admin saves anything.
type DefaultSettingsService struct {
	repo settingsRepo.SettingsRepository
}

// NewDefaultSettingsService wires the settings service.
func NewDefaultSettingsService(repo settingsRepo.SettingsRepository) *DefaultSettingsService {
	return &DefaultSettingsService{repo: repo}
}

func (s *DefaultSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	saved, err := s.repo.Load(ctx)
	if errors.Is(err, settingsRepo.ErrNotFound) {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *DefaultSettingsService) Update(ctx context.Context, in models.Settings) (*models.Settings, error) {
	if in.BusinessName == "" {
		return nil, fmt.Errorf("settings: business name is required")
	}
	if in.OpenHour < 0 || in.CloseHour > 23 || in.OpenHour >= in.CloseHour {
		return nil, fmt.Errorf("settings: invalid business hours %d-%d", in.OpenHour, in.CloseHour)
	}
	switch in.Theme {
	case "light", "dark":
	default:
		return nil, fmt.Errorf("settings: unknown theme %q", in.Theme)
	}
	switch in.Language {
	case "en", "am":
	default:
		return nil, fmt.Errorf("settings: unknown language %q", in.Language)
	}

	if err := s.repo.Save(ctx, in); err != nil {
		return nil, err
	}
	return s.repo.Load(ctx)
}
