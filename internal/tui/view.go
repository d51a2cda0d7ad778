package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mlevasseur/faitout/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.screen {
	case ScreenNotebook:
		content = m.viewNotebook()
	case ScreenEditor:
		content = m.viewEditor()
	case ScreenPageView:
		content = m.viewPageView()
	case ScreenAppearance:
		content = m.viewAppearance()
	}

	return m.styles.App.Render(content)
}

// viewNotebook renders the notebook screen. The row structure above the
// card viewport is fixed; listTopLine depends on it.
func (m *Model) viewNotebook() string {
	var b strings.Builder

	b.WriteString(m.viewNotebookHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewSearchBar())
	b.WriteString("\n\n")
	b.WriteString(m.listViewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewNotebookFooter())

	return b.String()
}

// listTopLine is the terminal row where the card viewport starts: the app
// frame's top padding plus the header, search bar and their spacing.
func (m *Model) listTopLine() int {
	return 5
}

func (m *Model) viewNotebookHeader() string {
	title := m.styles.HeaderText.Render("Notebook")
	hints := m.styles.HeaderHint.Render(
		m.styles.FooterKey.Render("n") + " New page  " +
			m.styles.FooterKey.Render("s") + " Settings",
	)

	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(hints)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + hints
}

func (m *Model) viewSearchBar() string {
	bar := m.styles.SearchPrompt.Render("Search: ") + m.searchInput.View()
	if m.notebook.Search() != "" {
		bar += "  " + m.styles.SearchClear.Render("esc to clear")
	}
	return bar
}

// refreshList rebuilds the card list content and the mouse hit regions.
// Call after anything that changes what the notebook shows.
func (m *Model) refreshList() {
	visible := m.notebook.VisibleIndices()
	m.cardRegions = m.cardRegions[:0]

	if len(visible) == 0 {
		m.listViewport.SetContent(m.styles.EmptyMsg.Render("No notes match your search."))
		return
	}

	selected, hasSelection := m.notebook.Selected()
	menuIndex, menuOpen := m.notebook.ColorMenu()

	var b strings.Builder
	line := 0
	for _, abs := range visible {
		note, ok := m.notebook.Get(abs)
		if !ok {
			continue
		}

		card := m.renderCard(note, hasSelection && abs == selected)
		if menuOpen && menuIndex == abs {
			card = lipgloss.JoinVertical(lipgloss.Left, card, m.renderColorMenu(note.Color))
		}

		height := lipgloss.Height(card)
		m.cardRegions = append(m.cardRegions, cardRegion{
			index:     abs,
			startLine: line,
			endLine:   line + height - 1,
		})

		b.WriteString(card)
		b.WriteString("\n")
		line += height
	}

	m.listViewport.SetContent(strings.TrimRight(b.String(), "\n"))
}

// renderCard renders one page card: swatch dot and title, tags, and the
// rendered body. The left border doubles as the page's color bar.
func (m *Model) renderCard(note domain.Note, selected bool) string {
	width := m.listViewport.Width - 2
	if width < 20 {
		width = 20
	}
	inner := width - 2

	swatch := lipgloss.NewStyle().Foreground(SwatchColor(note.Color)).Render("●")
	title := runewidth.Truncate(note.DisplayTitle(), inner-2, "…")
	rows := []string{swatch + " " + m.styles.CardTitle.Render(title)}

	if len(note.Tags) > 0 {
		rows = append(rows, m.styles.CardTags.Render(hashTags(note.Tags)))
	}

	if strings.TrimSpace(note.Body) != "" {
		rows = append(rows, strings.TrimRight(m.md.Render(note.Body), "\n"))
	}

	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}
	return style.
		Width(width).
		BorderLeftForeground(SwatchColor(note.Color)).
		Render(strings.Join(rows, "\n"))
}

// hashTags formats tags the way cards and the page view show them.
func hashTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return strings.Join(parts, " ")
}

// renderColorMenu renders the expanded six-swatch menu with the current
// color marked.
func (m *Model) renderColorMenu(current domain.NoteColor) string {
	rows := []string{m.styles.MenuTitle.Render("Color")}

	for i, color := range domain.AllNoteColors() {
		swatch := lipgloss.NewStyle().Foreground(SwatchColor(color)).Render("■")
		mark := " "
		if color == current {
			mark = "✓"
		}
		row := fmt.Sprintf("%s %s %s", swatch, color, mark)
		if i == m.colorCursor {
			rows = append(rows, m.styles.MenuItemSelected.Render("> "+row))
		} else {
			rows = append(rows, m.styles.MenuItem.Render("  "+row))
		}
	}

	return m.styles.Menu.Render(strings.Join(rows, "\n"))
}

func (m *Model) viewStatusLine() string {
	if m.status == "" {
		return ""
	}
	status := runewidth.Truncate(m.status, m.contentWidth(), "…")
	if m.statusIsErr {
		return m.styles.StatusError.Render(status)
	}
	return m.styles.StatusInfo.Render(status)
}

func (m *Model) viewNotebookFooter() string {
	if m.showFullHelp {
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("enter") + " open  " +
				m.styles.FooterKey.Render("e") + " edit  " +
				m.styles.FooterKey.Render("d") + " trash  " +
				m.styles.FooterKey.Render("c") + " colors  " +
				m.styles.FooterKey.Render("y") + " yank body  " +
				m.styles.FooterKey.Render("x") + " export  " +
				m.styles.FooterKey.Render("/") + " search  " +
				m.styles.FooterKey.Render("?") + " less  " +
				m.styles.FooterKey.Render("q") + " quit",
		)
	}
	return m.styles.Footer.Render(
		m.styles.FooterKey.Render("j/k") + " nav  " +
			m.styles.FooterKey.Render("enter") + " open  " +
			m.styles.FooterKey.Render("n") + " new  " +
			m.styles.FooterKey.Render("?") + " help  " +
			m.styles.FooterKey.Render("q") + " quit",
	)
}

// viewEditor renders the editor screen in either preview-only or split
// mode.
func (m *Model) viewEditor() string {
	var b strings.Builder

	b.WriteString(m.styles.EditorHeader.Render(m.editor.Header()))
	b.WriteString("\n\n")

	fieldWidth := m.contentWidth() - 2
	b.WriteString(m.fieldStyle(fieldTitle).Width(fieldWidth).Render(m.editor.title.View()))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(fieldTags).Width(fieldWidth).Render(m.editor.tags.View()))
	b.WriteString("\n")

	if m.editor.Split() {
		paneWidth := (m.contentWidth()-1)/2 - 2
		bodyPane := m.fieldStyle(fieldBody).Width(paneWidth).Render(m.editor.body.View())
		previewPane := m.styles.PreviewPane.Width(paneWidth).Render(m.renderEditorPreview())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bodyPane, " ", previewPane))
	} else {
		b.WriteString(m.styles.PreviewPane.Width(fieldWidth).Render(m.renderEditorPreview()))
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewEditorFooter())

	return b.String()
}

func (m *Model) renderEditorPreview() string {
	body := m.editor.body.Value()
	if strings.TrimSpace(body) == "" {
		return m.styles.EmptyMsg.Render("Fill the page with your thoughts...")
	}
	return strings.TrimRight(m.md.Render(body), "\n")
}

func (m *Model) fieldStyle(field int) lipgloss.Style {
	if m.editor.focus == field {
		return m.styles.FieldFocused
	}
	return m.styles.FieldBlurred
}

func (m *Model) viewEditorFooter() string {
	return m.styles.Footer.Render(
		m.styles.FooterKey.Render("ctrl+s") + " " + m.editor.SaveLabel() + "  " +
			m.styles.FooterKey.Render("ctrl+p") + " " + m.editor.ToggleLabel() + "  " +
			m.styles.FooterKey.Render("tab") + " next field  " +
			m.styles.FooterKey.Render("esc") + " Back to notebook",
	)
}

// viewPageView renders the read-only page screen.
func (m *Model) viewPageView() string {
	var b strings.Builder

	if note, ok := m.notebook.Get(m.pageIndex); ok {
		title := runewidth.Truncate(note.DisplayTitle(), m.contentWidth(), "…")
		b.WriteString(m.styles.PageTitle.Render(title))
		b.WriteString("\n")
		if len(note.Tags) > 0 {
			b.WriteString(m.styles.PageTags.Render(hashTags(note.Tags)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.pageViewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewPageFooter())

	return b.String()
}

// refreshPageView rerenders the open page into the page viewport.
func (m *Model) refreshPageView() {
	note, ok := m.notebook.Get(m.pageIndex)
	if !ok {
		m.pageViewport.SetContent(m.styles.EmptyMsg.Render("Note not found"))
		return
	}
	m.pageViewport.SetContent(strings.TrimRight(m.md.Render(note.Body), "\n"))
}

func (m *Model) viewPageFooter() string {
	return m.styles.Footer.Render(
		m.styles.FooterKey.Render("e") + " edit  " +
			m.styles.FooterKey.Render("d") + " trash  " +
			m.styles.FooterKey.Render("y") + " yank body  " +
			m.styles.FooterKey.Render("x") + " export  " +
			m.styles.FooterKey.Render("esc") + " back",
	)
}

// viewAppearance renders the appearance settings screen.
func (m *Model) viewAppearance() string {
	var b strings.Builder

	b.WriteString(m.styles.HeaderText.Render("Appearance"))
	b.WriteString("\n\n")

	rows := []string{
		m.styles.SettingsLabel.Render("Theme") + "‹ " + m.settings.SelectedTheme.Display() + " ›",
		m.styles.SettingsLabel.Render("Font") + "‹ " + m.settings.SelectedFont.Display() + " ›",
		fmt.Sprintf("Font size: %dpt", m.settings.FontSize),
	}
	for i, row := range rows {
		if i == m.appearanceCursor {
			b.WriteString(m.styles.SettingsValueActive.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.SettingsSample.Render("The quick brown fox jumps over the lazy dog"))
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewAppearanceFooter())

	return b.String()
}

func (m *Model) viewAppearanceFooter() string {
	return m.styles.Footer.Render(
		m.styles.FooterKey.Render("←/→") + " change  " +
			m.styles.FooterKey.Render("↑/↓") + " select  " +
			m.styles.FooterKey.Render("esc") + " Back",
	)
}
