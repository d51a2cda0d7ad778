package settingstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlevasseur/faitout/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "settings.json"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := domain.DefaultSettings()
	if settings != want {
		t.Errorf("Load() = %+v, want %+v", settings, want)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := domain.Settings{
		SelectedTheme: domain.ThemeNord,
		SelectedFont:  domain.FontMonospace,
		FontSize:      22,
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != saved {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
}

func TestStore_LoadClampsFontSize(t *testing.T) {
	store := newTestStore(t)

	raw := `{"selected_theme": "Nord", "selected_font": "Serif", "font_size": 500}`
	if err := os.WriteFile(store.Path(), []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.FontSize != domain.MaxFontSize {
		t.Errorf("FontSize = %d, want %d", loaded.FontSize, domain.MaxFontSize)
	}
	if loaded.SelectedTheme != domain.ThemeNord {
		t.Errorf("SelectedTheme = %q, want %q", loaded.SelectedTheme, domain.ThemeNord)
	}
}

func TestStore_LoadRepairsUnknownSelections(t *testing.T) {
	store := newTestStore(t)

	raw := `{"selected_theme": "Dracula", "selected_font": "Wingdings", "font_size": 16}`
	if err := os.WriteFile(store.Path(), []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := domain.DefaultSettings()
	if loaded.SelectedTheme != want.SelectedTheme {
		t.Errorf("SelectedTheme = %q, want %q", loaded.SelectedTheme, want.SelectedTheme)
	}
	if loaded.SelectedFont != want.SelectedFont {
		t.Errorf("SelectedFont = %q, want %q", loaded.SelectedFont, want.SelectedFont)
	}
}

func TestStore_LoadMalformedFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(), []byte("you shall not parse"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := store.Load(); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestStore_SaveIsPrettyPrinted(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(domain.DefaultSettings()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "\n  \"selected_theme\"") {
		t.Errorf("file is not indented:\n%s", text)
	}
	if !strings.Contains(text, `"font_size": 16`) {
		t.Errorf("file is missing default font size:\n%s", text)
	}
}
