// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the TOML configuration file, looked up in
// the process working directory.
const ConfigFileName = "faitout.toml"

// Config holds the application configuration. All fields are optional in
// the file; missing values fall back to the defaults below.
type Config struct {
	DataDir  string `toml:"data_dir"`  // Directory holding notes.json, settings.json and exports
	LogFile  string `toml:"log_file"`  // Log destination; empty disables logging
	LogLevel string `toml:"log_level"` // debug, info, warn or error

	// Warnings collects unknown keys found while parsing.
	Warnings []string `toml:"-"`
}

// NewDefaultConfig returns the configuration used when no file exists.
// Data files live in the process working directory and logging is off.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir:  ".",
		LogFile:  "",
		LogLevel: "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// NotesPath returns the location of the notes file.
func (c *Config) NotesPath() string {
	return filepath.Join(c.DataDir, "notes.json")
}

// SettingsPath returns the location of the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.json")
}

// ExportsDir returns the directory exported pages are written to.
func (c *Config) ExportsDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a Loader reading from ./faitout.toml.
func NewLoader() *Loader {
	return &Loader{path: ConfigFileName}
}

// NewLoaderWithPath creates a Loader reading from a custom path.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configuration merged over defaults. A missing file
// yields the default configuration.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	merged := mergeRaw(base, raw)

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return merged, nil
}

// mergeRaw applies the raw file values over the base config and collects
// warnings for unknown keys.
func mergeRaw(base *Config, raw map[string]any) *Config {
	res := &Config{
		DataDir:  base.DataDir,
		LogFile:  base.LogFile,
		LogLevel: base.LogLevel,
	}
	var warnings []string

	for key, value := range raw {
		switch key {
		case "data_dir":
			if s, ok := value.(string); ok && s != "" {
				res.DataDir = s
			}
		case "log_file":
			if s, ok := value.(string); ok && s != "" {
				res.LogFile = s
			}
		case "log_level":
			if s, ok := value.(string); ok && s != "" {
				res.LogLevel = s
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", key))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}
