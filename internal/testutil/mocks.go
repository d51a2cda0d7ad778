// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/mlevasseur/faitout/internal/domain"
)

// MockNoteRepository is a test double for domain.NoteRepository.
// Save appends each call's entries to Saved so tests can assert on
// every write, not just the last one.
type MockNoteRepository struct {
	Entries []domain.Note
	Saved   [][]domain.Note
	LoadErr error
	SaveErr error
}

// NewMockNoteRepository creates a new MockNoteRepository seeded with entries.
func NewMockNoteRepository(entries ...domain.Note) *MockNoteRepository {
	return &MockNoteRepository{Entries: entries}
}

// Ensure MockNoteRepository implements domain.NoteRepository interface.
var _ domain.NoteRepository = (*MockNoteRepository)(nil)

// Load returns the seeded entries or the configured error.
func (m *MockNoteRepository) Load() ([]domain.Note, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Entries, nil
}

// Save records the entries and makes them the new Load result.
func (m *MockNoteRepository) Save(entries []domain.Note) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, entries)
	m.Entries = entries
	return nil
}

// MockSettingsRepository is a test double for domain.SettingsRepository.
type MockSettingsRepository struct {
	Settings domain.Settings
	Saved    []domain.Settings
	LoadErr  error
	SaveErr  error
}

// NewMockSettingsRepository creates a new MockSettingsRepository holding the defaults.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{Settings: domain.DefaultSettings()}
}

// Ensure MockSettingsRepository implements domain.SettingsRepository interface.
var _ domain.SettingsRepository = (*MockSettingsRepository)(nil)

// Load returns the stored settings or the configured error.
func (m *MockSettingsRepository) Load() (domain.Settings, error) {
	if m.LoadErr != nil {
		return domain.Settings{}, m.LoadErr
	}
	return m.Settings, nil
}

// Save records the settings and makes them the new Load result.
func (m *MockSettingsRepository) Save(settings domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, settings)
	m.Settings = settings
	return nil
}

// MockPageExporter is a test double for domain.PageExporter.
type MockPageExporter struct {
	Path     string
	Err      error
	Exported []domain.Note
}

// Ensure MockPageExporter implements domain.PageExporter interface.
var _ domain.PageExporter = (*MockPageExporter)(nil)

// Export records the note and returns the configured path.
func (m *MockPageExporter) Export(note domain.Note) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Exported = append(m.Exported, note)
	return m.Path, nil
}

// MockLogger is a test double for domain.Logger. It records messages
// per level and discards categories.
type MockLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a debug message.
func (m *MockLogger) Debug(_, msg string) { m.Debugs = append(m.Debugs, msg) }

// Info records an info message.
func (m *MockLogger) Info(_, msg string) { m.Infos = append(m.Infos, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(_, msg string) { m.Warns = append(m.Warns, msg) }

// Error records an error message.
func (m *MockLogger) Error(_, msg string) { m.Errors = append(m.Errors, msg) }
