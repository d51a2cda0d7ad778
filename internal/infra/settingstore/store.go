// Package settingstore provides a JSON file-based implementation of SettingsRepository.
package settingstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlevasseur/faitout/internal/domain"
)

// Store implements domain.SettingsRepository using a single pretty-printed
// JSON file.
type Store struct {
	path string
}

// New creates a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted settings. A missing file yields the defaults.
// Out-of-range values are clamped and unknown selections fall back to
// their defaults.
func (s *Store) Load() (domain.Settings, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(content, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("parse settings file: %w", err)
	}

	settings.Normalize()
	return settings, nil
}

// Save rewrites the settings file as pretty-printed JSON, creating parent
// directories as needed.
func (s *Store) Save(settings domain.Settings) error {
	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements SettingsRepository.
var _ domain.SettingsRepository = (*Store)(nil)
