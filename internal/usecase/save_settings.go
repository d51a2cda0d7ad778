package usecase

import (
	"context"
	"fmt"

	"github.com/mlevasseur/faitout/internal/domain"
)

// SaveSettingsInput contains the settings to persist.
type SaveSettingsInput struct {
	Settings domain.Settings
}

// SaveSettingsOutput contains the result of saving the settings.
type SaveSettingsOutput struct{}

// SaveSettings is the use case for persisting the appearance settings
// after a change.
type SaveSettings struct {
	settings domain.SettingsRepository
	logger   domain.Logger
}

// NewSaveSettings creates a new SaveSettings use case.
func NewSaveSettings(settings domain.SettingsRepository, logger domain.Logger) *SaveSettings {
	return &SaveSettings{
		settings: settings,
		logger:   logger,
	}
}

// Execute writes the settings. The failure is logged and returned; the
// in-memory settings stay in effect either way.
func (uc *SaveSettings) Execute(_ context.Context, in SaveSettingsInput) (*SaveSettingsOutput, error) {
	if err := uc.settings.Save(in.Settings); err != nil {
		if uc.logger != nil {
			uc.logger.Error("settings", fmt.Sprintf("save failed: %v", err))
		}
		return nil, fmt.Errorf("save settings: %w", err)
	}

	return &SaveSettingsOutput{}, nil
}
