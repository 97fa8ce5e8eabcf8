package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.UserSettings{
			UserID:         userID,
			Theme:          "light",
			Language:       "en",
			Currency:       "LKR",
			DateFormat:     "DD/MM/YYYY",
			LowStockAlerts: true,
			CreditAlerts:   true,
		}
		if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID         uuid.UUID
	Theme          string
	Language       string
	Currency       string
	DateFormat     string
	LowStockAlerts bool
	CreditAlerts   bool
}

// UpdateSettings updates user settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.UserSettings{UserID: input.UserID}
	}

	settings.Theme = input.Theme
	settings.Language = input.Language
	settings.Currency = input.Currency
	settings.DateFormat = input.DateFormat
	settings.LowStockAlerts = input.LowStockAlerts
	settings.CreditAlerts = input.CreditAlerts

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
