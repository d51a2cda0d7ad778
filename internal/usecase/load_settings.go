package usecase

import (
	"context"
	"fmt"

	"github.com/mlevasseur/faitout/internal/domain"
)

// LoadSettingsInput contains the parameters for loading the settings.
type LoadSettingsInput struct{}

// LoadSettingsOutput contains the loaded settings.
type LoadSettingsOutput struct {
	Settings domain.Settings
}

// LoadSettings is the use case for loading the appearance settings at
// startup.
type LoadSettings struct {
	settings domain.SettingsRepository
	logger   domain.Logger
}

// NewLoadSettings creates a new LoadSettings use case.
func NewLoadSettings(settings domain.SettingsRepository, logger domain.Logger) *LoadSettings {
	return &LoadSettings{
		settings: settings,
		logger:   logger,
	}
}

// Execute loads the persisted settings. An unreadable or corrupt file is
// not fatal: the defaults apply and the failure is logged.
func (uc *LoadSettings) Execute(_ context.Context, _ LoadSettingsInput) (*LoadSettingsOutput, error) {
	settings, err := uc.settings.Load()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("settings", fmt.Sprintf("load failed, using defaults: %v", err))
		}
		return &LoadSettingsOutput{Settings: domain.DefaultSettings()}, nil
	}

	return &LoadSettingsOutput{Settings: settings}, nil
}
