// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/infra/config"
	"github.com/mlevasseur/faitout/internal/infra/export"
	"github.com/mlevasseur/faitout/internal/infra/logging"
	"github.com/mlevasseur/faitout/internal/infra/notestore"
	"github.com/mlevasseur/faitout/internal/infra/settingstore"
	"github.com/mlevasseur/faitout/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Notes    domain.NoteRepository
	Settings domain.SettingsRepository
	Exporter domain.PageExporter
	Logger   domain.Logger

	// Configuration
	Config *config.Config
}

// New creates a new Container from the configuration file. A missing
// config file is fine; a broken one is logged and replaced with the
// defaults so the application still starts.
func New() *Container {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		cfg = config.NewDefaultConfig()
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}

	logger := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	for _, warning := range cfg.Warnings {
		logger.Warn("config", warning)
	}

	return &Container{
		Notes:    notestore.New(cfg.NotesPath()),
		Settings: settingstore.New(cfg.SettingsPath()),
		Exporter: export.New(cfg.ExportsDir()),
		Logger:   logger,
		Config:   cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, notes domain.NoteRepository, settings domain.SettingsRepository, exporter domain.PageExporter, logger domain.Logger) *Container {
	return &Container{
		Notes:    notes,
		Settings: settings,
		Exporter: exporter,
		Logger:   logger,
		Config:   cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// LoadNotebookUseCase returns a new LoadNotebook use case.
func (c *Container) LoadNotebookUseCase() *usecase.LoadNotebook {
	return usecase.NewLoadNotebook(c.Notes, c.Logger)
}

// SaveNotebookUseCase returns a new SaveNotebook use case.
func (c *Container) SaveNotebookUseCase() *usecase.SaveNotebook {
	return usecase.NewSaveNotebook(c.Notes, c.Logger)
}

// LoadSettingsUseCase returns a new LoadSettings use case.
func (c *Container) LoadSettingsUseCase() *usecase.LoadSettings {
	return usecase.NewLoadSettings(c.Settings, c.Logger)
}

// SaveSettingsUseCase returns a new SaveSettings use case.
func (c *Container) SaveSettingsUseCase() *usecase.SaveSettings {
	return usecase.NewSaveSettings(c.Settings, c.Logger)
}

// ExportPageUseCase returns a new ExportPage use case.
func (c *Container) ExportPageUseCase() *usecase.ExportPage {
	return usecase.NewExportPage(c.Exporter, c.Logger)
}
