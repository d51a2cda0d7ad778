package domain

// NoteRepository persists the notebook's entries as one document.
type NoteRepository interface {
	// Load reads every persisted note. A missing file yields an empty
	// slice, not an error.
	Load() ([]Note, error)

	// Save rewrites the whole collection.
	Save(entries []Note) error
}

// SettingsRepository persists the appearance settings.
type SettingsRepository interface {
	// Load reads the stored settings. A missing file yields the
	// defaults, not an error.
	Load() (Settings, error)

	// Save rewrites the settings document.
	Save(settings Settings) error
}

// PageExporter writes a single note out as a standalone markdown file.
type PageExporter interface {
	// Export writes the note and returns the path it was written to.
	Export(note Note) (string, error)
}

// Logger records application events to the log file.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
