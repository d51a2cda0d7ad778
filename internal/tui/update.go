package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Update all layout-dependent sizes
		m.updateLayoutSizes()
		return m, nil

	case MsgStatus:
		return m, m.setStatus(msg.Text, msg.IsError)

	case MsgClearStatus:
		// Ignore clears scheduled for an earlier status
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes keyboard input to the active screen.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenNotebook:
		return m.handleNotebookKeys(msg)
	case ScreenEditor:
		return m.handleEditorKeys(msg)
	case ScreenPageView:
		return m.handlePageViewKeys(msg)
	case ScreenAppearance:
		return m.handleAppearanceKeys(msg)
	}

	return m, nil
}

// handleNotebookKeys handles keys on the notebook screen.
func (m *Model) handleNotebookKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, open := m.notebook.ColorMenu(); open {
		return m.handleColorMenuKeys(msg)
	}
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if index, ok := m.notebook.Selected(); ok {
			m.openPageView(index)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.notebook.ResetInteraction()
		m.editor.LoadNew()
		m.screen = ScreenEditor
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if index, ok := m.notebook.Selected(); ok {
			m.openEditorFor(index)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if index, ok := m.notebook.Selected(); ok {
			return m.deletePage(index)
		}
		return m, nil

	case key.Matches(msg, m.keys.Colors):
		if index, ok := m.notebook.Selected(); ok {
			m.toggleColorMenu(index)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Settings):
		m.appearanceCursor = 0
		m.screen = ScreenAppearance
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		if index, ok := m.notebook.Selected(); ok {
			return m.yankPage(index)
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if index, ok := m.notebook.Selected(); ok {
			return m.exportPage(index)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showFullHelp = !m.showFullHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.notebook.Search() != "" {
			m.clearSearch()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKeys handles keys while the search field is focused.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		// Keep the query, return focus to the list
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.notebook.SetSearch(m.searchInput.Value())
	m.cursor = 0
	m.listViewport.SetYOffset(0)
	m.refreshList()
	return m, cmd
}

// clearSearch drops the query and leaves search mode.
func (m *Model) clearSearch() {
	m.searching = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.notebook.SetSearch("")
	m.clampCursor()
	m.syncCursorToSelection()
	m.refreshList()
}

// handleColorMenuKeys handles keys while a color menu is expanded.
func (m *Model) handleColorMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menuIndex, open := m.notebook.ColorMenu()
	if !open {
		return m, nil
	}

	colors := domain.AllNoteColors()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.colorCursor > 0 {
			m.colorCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.colorCursor < len(colors)-1 {
			m.colorCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.notebook.SetColor(menuIndex, colors[m.colorCursor]) {
			m.refreshList()
			return m, m.persistNotes()
		}
		return m, nil

	case key.Matches(msg, m.keys.Colors), key.Matches(msg, m.keys.Escape):
		m.notebook.ToggleColorMenu(menuIndex)
		m.refreshList()
		return m, nil
	}

	return m, nil
}

// toggleColorMenu expands or collapses the color menu for the entry at
// index and positions the menu cursor on the entry's current color.
func (m *Model) toggleColorMenu(index int) {
	m.notebook.ToggleColorMenu(index)
	if _, open := m.notebook.ColorMenu(); open {
		if note, ok := m.notebook.Get(index); ok {
			for i, c := range domain.AllNoteColors() {
				if c == note.Color {
					m.colorCursor = i
					break
				}
			}
		}
	}
	m.refreshList()
}

// handleEditorKeys handles keys on the editor screen.
func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.saveEditor()

	case key.Matches(msg, m.keys.TogglePreview):
		m.editor.TogglePreview()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextField):
		m.editor.FocusNext()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.editor.FocusPrev()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		// Back to notebook abandons the buffer
		m.editor.LoadNew()
		m.screen = ScreenNotebook
		return m, nil
	}

	cmd := m.editor.Update(msg)
	return m, cmd
}

// saveEditor applies the save rules: an empty buffer is a silent no-op,
// anything else upserts, selects the saved entry, resets the editor and
// returns to the notebook.
func (m *Model) saveEditor() (tea.Model, tea.Cmd) {
	note, ok := m.editor.BuildNote()
	if !ok {
		return m, nil
	}

	editing := noEditing
	if index, isEditing := m.editor.Editing(); isEditing {
		editing = index
	}

	saved := m.notebook.Upsert(note, editing)
	m.notebook.Select(saved)
	m.editor.LoadNew()
	m.screen = ScreenNotebook
	m.syncCursorToSelection()
	m.refreshList()
	m.scrollCursorIntoView()
	return m, m.persistNotes()
}

// deletePage removes the entry at index and realigns every index holder in
// the same pass: the notebook adjusts its own, the editor's editing
// reference shifts here, and the selection follows the editing reference
// when one survives.
func (m *Model) deletePage(index int) (tea.Model, tea.Cmd) {
	if !m.notebook.Delete(index) {
		return m, nil
	}

	m.editor.AdjustAfterDelete(index)
	if editing, ok := m.editor.Editing(); ok {
		m.notebook.Select(editing)
	} else {
		m.notebook.ClearSelection()
	}

	if m.screen == ScreenPageView {
		switch {
		case m.pageIndex == index:
			m.screen = ScreenNotebook
		case m.pageIndex > index:
			m.pageIndex--
			m.refreshPageView()
		}
	}

	m.clampCursor()
	m.syncCursorToSelection()
	m.refreshList()
	return m, m.persistNotes()
}

// yankPage copies the page body to the system clipboard.
func (m *Model) yankPage(index int) (tea.Model, tea.Cmd) {
	note, ok := m.notebook.Get(index)
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(note.Body); err != nil {
		return m, m.setStatus("Could not copy to clipboard", true)
	}
	return m, m.setStatus("Page body copied", false)
}

// exportPage writes the page out as a markdown file.
func (m *Model) exportPage(index int) (tea.Model, tea.Cmd) {
	out, err := m.container.ExportPageUseCase().Execute(
		context.Background(),
		usecase.ExportPageInput{Entries: m.notebook.Entries(), Index: index},
	)
	if err != nil {
		return m, m.setStatus("Export failed", true)
	}
	return m, m.setStatus("Exported to "+out.Path, false)
}

// handlePageViewKeys handles keys on the page view screen.
func (m *Model) handlePageViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenNotebook
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.openEditorFor(m.pageIndex)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		return m.deletePage(m.pageIndex)

	case key.Matches(msg, m.keys.Yank):
		return m.yankPage(m.pageIndex)

	case key.Matches(msg, m.keys.Export):
		return m.exportPage(m.pageIndex)
	}

	var cmd tea.Cmd
	m.pageViewport, cmd = m.pageViewport.Update(msg)
	return m, cmd
}

// Appearance rows, top to bottom.
const (
	appearanceTheme = iota
	appearanceFont
	appearanceSize
)

// handleAppearanceKeys handles keys on the appearance screen.
func (m *Model) handleAppearanceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.screen = ScreenNotebook
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.appearanceCursor > 0 {
			m.appearanceCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.appearanceCursor < appearanceSize {
			m.appearanceCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.adjustAppearance(-1)

	case key.Matches(msg, m.keys.Right):
		return m.adjustAppearance(1)
	}

	return m, nil
}

// adjustAppearance cycles the setting under the cursor by delta and
// persists only when the stored value actually changed.
func (m *Model) adjustAppearance(delta int) (tea.Model, tea.Cmd) {
	switch m.appearanceCursor {
	case appearanceTheme:
		themes := domain.AllThemes()
		next := cycleOption(themes, m.settings.SelectedTheme, delta)
		if m.settings.SetTheme(next) {
			m.applyTheme()
			return m, m.persistSettings()
		}

	case appearanceFont:
		fonts := domain.AllFonts()
		next := cycleOption(fonts, m.settings.SelectedFont, delta)
		if m.settings.SetFont(next) {
			return m, m.persistSettings()
		}

	case appearanceSize:
		if m.settings.SetFontSize(m.settings.FontSize + delta) {
			return m, m.persistSettings()
		}
	}

	return m, nil
}

// cycleOption steps through options from current by delta, wrapping at
// both ends.
func cycleOption[T comparable](options []T, current T, delta int) T {
	pos := 0
	for i, option := range options {
		if option == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(options)) % len(options)
	return options[pos]
}

// handleMouseMsg handles mouse input on the notebook screen. A click on a
// card selects it; a second click on the same card within the
// double-click window opens the editor.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenNotebook {
		return m.scrollWithWheel(msg)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.listViewport.SetYOffset(m.listViewport.YOffset - 3)
		return m, nil

	case tea.MouseButtonWheelDown:
		m.listViewport.SetYOffset(m.listViewport.YOffset + 3)
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		line := msg.Y - m.listTopLine()
		if line < 0 {
			return m, nil
		}
		index, ok := m.cardAt(line)
		if !ok {
			return m, nil
		}
		if m.notebook.Click(index, time.Now()) {
			m.openEditorFor(index)
			m.refreshList()
			return m, textinput.Blink
		}
		m.syncCursorToSelection()
		m.refreshList()
		return m, nil
	}

	return m, nil
}

// scrollWithWheel forwards wheel events to the page viewport.
func (m *Model) scrollWithWheel(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPageView {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.pageViewport.SetYOffset(m.pageViewport.YOffset - 3)
	case tea.MouseButtonWheelDown:
		m.pageViewport.SetYOffset(m.pageViewport.YOffset + 3)
	}
	return m, nil
}
