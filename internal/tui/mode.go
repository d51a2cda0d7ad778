// Package tui provides the terminal user interface for faitout.
package tui

// Screen represents the screen currently shown to the user.
type Screen int

const (
	ScreenNotebook   Screen = iota // Notebook list with search
	ScreenEditor                   // Page editor (new or existing)
	ScreenPageView                 // Read-only rendered page
	ScreenAppearance               // Appearance settings
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenNotebook:
		return "notebook"
	case ScreenEditor:
		return "editor"
	case ScreenPageView:
		return "page_view"
	case ScreenAppearance:
		return "appearance"
	default:
		return "unknown"
	}
}

// IsInputScreen returns true if the screen accepts free text input.
func (s Screen) IsInputScreen() bool {
	switch s {
	case ScreenEditor:
		return true
	case ScreenNotebook, ScreenPageView, ScreenAppearance:
		return false
	}
	return false
}
