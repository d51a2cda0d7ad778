// Package notestore provides a JSON file-based implementation of NoteRepository.
package notestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlevasseur/faitout/internal/domain"
)

// Store implements domain.NoteRepository using a single pretty-printed
// JSON file holding the full note collection. The application is the only
// writer, so there is no file locking.
type Store struct {
	path string
}

// New creates a Store for the given file path. The file does not need to
// exist; it is created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads every persisted note. A missing file yields an empty slice.
// Unknown colors and missing tag arrays are repaired on the way in.
func (s *Store) Load() ([]domain.Note, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Note{}, nil
		}
		return nil, fmt.Errorf("read notes file: %w", err)
	}

	var entries []domain.Note
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse notes file: %w", err)
	}

	if entries == nil {
		entries = []domain.Note{}
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// Save rewrites the whole collection as a pretty-printed JSON array,
// creating parent directories as needed.
func (s *Store) Save(entries []domain.Note) error {
	if entries == nil {
		entries = []domain.Note{}
	}

	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
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

// Ensure Store implements NoteRepository.
var _ domain.NoteRepository = (*Store)(nil)
