package domain

// ThemeOption identifies one of the built-in color themes.
type ThemeOption string

const (
	ThemeKanagawaDragon ThemeOption = "KanagawaDragon"
	ThemeNord           ThemeOption = "Nord"
	ThemeSolarizedLight ThemeOption = "SolarizedLight"
	ThemeSolarizedDark  ThemeOption = "SolarizedDark"
)

// AllThemes returns the selectable themes in display order.
func AllThemes() []ThemeOption {
	return []ThemeOption{
		ThemeKanagawaDragon,
		ThemeNord,
		ThemeSolarizedLight,
		ThemeSolarizedDark,
	}
}

// Valid returns true if the theme is one of the known names.
func (t ThemeOption) Valid() bool {
	switch t {
	case ThemeKanagawaDragon, ThemeNord, ThemeSolarizedLight, ThemeSolarizedDark:
		return true
	}
	return false
}

// Display returns a human-readable theme name.
func (t ThemeOption) Display() string {
	switch t {
	case ThemeKanagawaDragon:
		return "Kanagawa Dragon"
	case ThemeNord:
		return "Nord"
	case ThemeSolarizedLight:
		return "Solarized Light"
	case ThemeSolarizedDark:
		return "Solarized Dark"
	default:
		return string(t)
	}
}

// FontOption identifies one of the built-in font preferences.
type FontOption string

const (
	FontSans      FontOption = "Sans"
	FontSerif     FontOption = "Serif"
	FontMonospace FontOption = "Monospace"
)

// AllFonts returns the selectable fonts in display order.
func AllFonts() []FontOption {
	return []FontOption{FontSans, FontSerif, FontMonospace}
}

// Valid returns true if the font is one of the known names.
func (f FontOption) Valid() bool {
	switch f {
	case FontSans, FontSerif, FontMonospace:
		return true
	}
	return false
}

// Display returns the concrete font family shown for the option.
func (f FontOption) Display() string {
	switch f {
	case FontSerif:
		return "Times New Roman"
	case FontMonospace:
		return "Fira Code"
	default:
		return "Sans"
	}
}

// Font size bounds. Every update clamps into this range.
const (
	MinFontSize     = 10
	MaxFontSize     = 48
	DefaultFontSize = 16
)

// ClampFontSize forces size into the allowed range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// Settings holds the persisted appearance preferences.
type Settings struct {
	SelectedTheme ThemeOption `json:"selected_theme"`
	SelectedFont  FontOption  `json:"selected_font"`
	FontSize      int         `json:"font_size"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		SelectedTheme: ThemeKanagawaDragon,
		SelectedFont:  FontSans,
		FontSize:      DefaultFontSize,
	}
}

// SetTheme switches the theme and reports whether the stored value
// changed. Unknown themes are rejected.
func (s *Settings) SetTheme(theme ThemeOption) bool {
	if !theme.Valid() || s.SelectedTheme == theme {
		return false
	}
	s.SelectedTheme = theme
	return true
}

// SetFont switches the font and reports whether the stored value changed.
// Unknown fonts are rejected.
func (s *Settings) SetFont(font FontOption) bool {
	if !font.Valid() || s.SelectedFont == font {
		return false
	}
	s.SelectedFont = font
	return true
}

// SetFontSize stores the clamped size and reports whether the stored
// value changed.
func (s *Settings) SetFontSize(size int) bool {
	clamped := ClampFontSize(size)
	if s.FontSize == clamped {
		return false
	}
	s.FontSize = clamped
	return true
}

// Normalize repairs fields after deserialization: unknown enum values
// fall back to the defaults and the size clamps into range.
func (s *Settings) Normalize() {
	if !s.SelectedTheme.Valid() {
		s.SelectedTheme = ThemeKanagawaDragon
	}
	if !s.SelectedFont.Valid() {
		s.SelectedFont = FontSans
	}
	s.FontSize = ClampFontSize(s.FontSize)
}
