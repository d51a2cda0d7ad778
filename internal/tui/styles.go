package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the lipgloss styles for the TUI. Styles are rebuilt
// from the active palette whenever the theme changes.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	HeaderText lipgloss.Style
	HeaderHint lipgloss.Style

	// Search bar
	SearchPrompt lipgloss.Style
	SearchClear  lipgloss.Style

	// Page cards
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardTitle     lipgloss.Style
	CardTags      lipgloss.Style
	CardBody      lipgloss.Style
	CardActions   lipgloss.Style
	CardActionKey lipgloss.Style

	// Color menu
	Menu             lipgloss.Style
	MenuTitle        lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// Editor
	EditorHeader lipgloss.Style
	EditorLabel  lipgloss.Style
	FieldFocused lipgloss.Style
	FieldBlurred lipgloss.Style
	PreviewPane  lipgloss.Style
	EditorHint   lipgloss.Style

	// Page view
	PageTitle lipgloss.Style
	PageTags  lipgloss.Style

	// Appearance settings
	SettingsLabel       lipgloss.Style
	SettingsValue       lipgloss.Style
	SettingsValueActive lipgloss.Style
	SettingsSample      lipgloss.Style

	// Status line
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Empty state
	EmptyMsg lipgloss.Style
}

// NewStyles builds the styles for the given palette.
func NewStyles(p ColorPalette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		HeaderHint: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		SearchClear: lipgloss.NewStyle().
			Foreground(p.TextFaint),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		CardTags: lipgloss.NewStyle().
			Foreground(p.Accent),

		CardBody: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		CardActions: lipgloss.NewStyle().
			Foreground(p.TextFaint),

		CardActionKey: lipgloss.NewStyle().
			Foreground(p.Primary),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		MenuTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		EditorHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		EditorLabel: lipgloss.NewStyle().
			Foreground(p.TextMuted),

		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		FieldBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		PreviewPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		EditorHint: lipgloss.NewStyle().
			Foreground(p.TextFaint),

		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		PageTags: lipgloss.NewStyle().
			Foreground(p.Accent),

		SettingsLabel: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Width(12),

		SettingsValue: lipgloss.NewStyle().
			Foreground(p.Text),

		SettingsValueActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		SettingsSample: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Italic(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Success),

		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(p.TextFaint),

		FooterKey: lipgloss.NewStyle().
			Foreground(p.Primary),

		EmptyMsg: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Italic(true).
			Padding(1, 0),
	}
}
