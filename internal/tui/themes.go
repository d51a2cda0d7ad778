package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mlevasseur/faitout/internal/domain"
)

// ColorPalette holds every color a theme contributes to the UI.
type ColorPalette struct {
	Primary   lipgloss.Color // Selection and focus highlights
	Accent    lipgloss.Color // Secondary highlights (tags, hints)
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextFaint lipgloss.Color
	Bg        lipgloss.Color
	BgCard    lipgloss.Color
	BgRaised  lipgloss.Color // Menus and focused cards
	Border    lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	// MarkdownStyle is the glamour standard style used for page bodies
	// rendered under this palette.
	MarkdownStyle string
}

// PaletteFor returns the palette for the given theme. Unknown themes get
// the default palette.
func PaletteFor(theme domain.ThemeOption) ColorPalette {
	switch theme {
	case domain.ThemeNord:
		return nordPalette
	case domain.ThemeSolarizedLight:
		return solarizedLightPalette
	case domain.ThemeSolarizedDark:
		return solarizedDarkPalette
	case domain.ThemeKanagawaDragon:
		return kanagawaDragonPalette
	}
	return kanagawaDragonPalette
}

var kanagawaDragonPalette = ColorPalette{
	Primary:       lipgloss.Color("#8ba4b0"),
	Accent:        lipgloss.Color("#c4b28a"),
	Text:          lipgloss.Color("#c5c9c5"),
	TextMuted:     lipgloss.Color("#a6a69c"),
	TextFaint:     lipgloss.Color("#625e5a"),
	Bg:            lipgloss.Color("#181616"),
	BgCard:        lipgloss.Color("#1d1c19"),
	BgRaised:      lipgloss.Color("#282727"),
	Border:        lipgloss.Color("#393836"),
	Error:         lipgloss.Color("#c4746e"),
	Success:       lipgloss.Color("#8a9a7b"),
	MarkdownStyle: "dark",
}

var nordPalette = ColorPalette{
	Primary:       lipgloss.Color("#88c0d0"),
	Accent:        lipgloss.Color("#ebcb8b"),
	Text:          lipgloss.Color("#eceff4"),
	TextMuted:     lipgloss.Color("#d8dee9"),
	TextFaint:     lipgloss.Color("#616e88"),
	Bg:            lipgloss.Color("#2e3440"),
	BgCard:        lipgloss.Color("#3b4252"),
	BgRaised:      lipgloss.Color("#434c5e"),
	Border:        lipgloss.Color("#4c566a"),
	Error:         lipgloss.Color("#bf616a"),
	Success:       lipgloss.Color("#a3be8c"),
	MarkdownStyle: "dark",
}

var solarizedLightPalette = ColorPalette{
	Primary:       lipgloss.Color("#268bd2"),
	Accent:        lipgloss.Color("#b58900"),
	Text:          lipgloss.Color("#657b83"),
	TextMuted:     lipgloss.Color("#93a1a1"),
	TextFaint:     lipgloss.Color("#b0bcbc"),
	Bg:            lipgloss.Color("#fdf6e3"),
	BgCard:        lipgloss.Color("#eee8d5"),
	BgRaised:      lipgloss.Color("#e4ddc8"),
	Border:        lipgloss.Color("#d5ccb4"),
	Error:         lipgloss.Color("#dc322f"),
	Success:       lipgloss.Color("#859900"),
	MarkdownStyle: "light",
}

var solarizedDarkPalette = ColorPalette{
	Primary:       lipgloss.Color("#268bd2"),
	Accent:        lipgloss.Color("#b58900"),
	Text:          lipgloss.Color("#839496"),
	TextMuted:     lipgloss.Color("#586e75"),
	TextFaint:     lipgloss.Color("#475b62"),
	Bg:            lipgloss.Color("#002b36"),
	BgCard:        lipgloss.Color("#073642"),
	BgRaised:      lipgloss.Color("#0d4a56"),
	Border:        lipgloss.Color("#586e75"),
	Error:         lipgloss.Color("#dc322f"),
	Success:       lipgloss.Color("#859900"),
	MarkdownStyle: "dark",
}

// swatchFallback is the neutral swatch for colors without one of their
// own (ColorDefault and anything unknown).
const swatchFallback = "#444444"

// SwatchColor returns the terminal color of a page color swatch. The
// swatches are fixed across themes so a Cherry page looks Cherry under
// every palette.
func SwatchColor(c domain.NoteColor) lipgloss.Color {
	if hex, ok := c.Swatch(); ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(swatchFallback)
}
