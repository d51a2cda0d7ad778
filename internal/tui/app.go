package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlevasseur/faitout/internal/app"
	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/usecase"
)

// statusLifetime is how long a status line message stays visible.
const statusLifetime = 3 * time.Second

// cardRegion maps rendered notebook lines back to the absolute entry index
// of the card occupying them, for mouse hit detection.
type cardRegion struct {
	index     int
	startLine int
	endLine   int
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	notebook  *domain.Notebook
	md        *markdownRenderer

	// State (slices - contain pointers)
	cardRegions []cardRegion

	// Components (structs with pointers)
	keys         KeyMap
	styles       Styles
	palette      ColorPalette
	listViewport viewport.Model
	pageViewport viewport.Model

	// Input state (large structs)
	searchInput textinput.Model
	editor      editorModel
	settings    domain.Settings

	// Status line
	status      string
	statusIsErr bool
	statusSeq   int

	// Numeric state (smaller types last)
	screen           Screen
	width            int
	height           int
	cursor           int
	colorCursor      int
	appearanceCursor int
	pageIndex        int
	searching        bool
	showFullHelp     bool
}

// New creates a new TUI Model with the given container. The notebook and
// settings are loaded up front: startup is the only read and both loads
// fall back to an empty state on failure.
func New(c *app.Container) *Model {
	notebook := domain.NewNotebook(nil)
	if out, err := c.LoadNotebookUseCase().Execute(context.Background(), usecase.LoadNotebookInput{}); err == nil {
		notebook = out.Notebook
	}

	settings := domain.DefaultSettings()
	if out, err := c.LoadSettingsUseCase().Execute(context.Background(), usecase.LoadSettingsInput{}); err == nil {
		settings = out.Settings
	}

	si := textinput.New()
	si.Placeholder = "Search titles..."
	si.CharLimit = 100
	si.Prompt = ""

	palette := PaletteFor(settings.SelectedTheme)

	m := &Model{
		container:    c,
		notebook:     notebook,
		md:           newMarkdownRenderer(palette.MarkdownStyle, 76),
		keys:         DefaultKeyMap(),
		styles:       NewStyles(palette),
		palette:      palette,
		listViewport: viewport.New(80, 20),
		pageViewport: viewport.New(80, 20),
		searchInput:  si,
		editor:       newEditor(),
		settings:     settings,
		screen:       ScreenNotebook,
	}
	m.editor.applyStyles(palette)
	m.applySearchStyles()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// applyTheme rebuilds every palette-derived piece of the UI after a theme
// change.
func (m *Model) applyTheme() {
	m.palette = PaletteFor(m.settings.SelectedTheme)
	m.styles = NewStyles(m.palette)
	m.editor.applyStyles(m.palette)
	m.applySearchStyles()
	m.md.SetStyle(m.palette.MarkdownStyle)
	m.refreshList()
}

func (m *Model) applySearchStyles() {
	m.searchInput.PromptStyle = lipgloss.NewStyle().Foreground(m.palette.Primary)
	m.searchInput.TextStyle = lipgloss.NewStyle().Foreground(m.palette.Text)
	m.searchInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(m.palette.TextFaint)
}

// setStatus shows a transient status line message and returns the command
// that clears it after statusLifetime.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusIsErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return MsgClearStatus{Seq: seq}
	})
}

// persistNotes writes the notebook synchronously, in the same event
// handling pass as the mutation it follows. A failed write keeps the
// in-memory state and surfaces as a status message only.
func (m *Model) persistNotes() tea.Cmd {
	_, err := m.container.SaveNotebookUseCase().Execute(
		context.Background(),
		usecase.SaveNotebookInput{Entries: m.notebook.Entries()},
	)
	if err != nil {
		return m.setStatus("Could not save your notes", true)
	}
	return nil
}

// persistSettings writes the settings synchronously. Callers only invoke it
// after an actual change.
func (m *Model) persistSettings() tea.Cmd {
	_, err := m.container.SaveSettingsUseCase().Execute(
		context.Background(),
		usecase.SaveSettingsInput{Settings: m.settings},
	)
	if err != nil {
		return m.setStatus("Could not save your settings", true)
	}
	return nil
}

// cursorIndex returns the absolute entry index under the cursor, if the
// filtered view is non-empty.
func (m *Model) cursorIndex() (int, bool) {
	visible := m.notebook.VisibleIndices()
	if len(visible) == 0 {
		return 0, false
	}
	if m.cursor >= len(visible) {
		return visible[len(visible)-1], true
	}
	if m.cursor < 0 {
		return visible[0], true
	}
	return visible[m.cursor], true
}

// moveCursor shifts the cursor over the visible cards and moves the
// selection with it.
func (m *Model) moveCursor(delta int) {
	visible := m.notebook.VisibleIndices()
	if len(visible) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	m.notebook.Select(visible[m.cursor])
	m.refreshList()
	m.scrollCursorIntoView()
}

// clampCursor keeps the cursor inside the visible range without touching
// the selection. Used after deletions and search changes, where selection
// rules are the notebook's business.
func (m *Model) clampCursor() {
	visible := m.notebook.VisibleIndices()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncCursorToSelection moves the cursor to the selected entry's position
// in the filtered view, when it is visible.
func (m *Model) syncCursorToSelection() {
	sel, ok := m.notebook.Selected()
	if !ok {
		return
	}
	for i, abs := range m.notebook.VisibleIndices() {
		if abs == sel {
			m.cursor = i
			return
		}
	}
}

// scrollCursorIntoView scrolls the notebook viewport so the card under the
// cursor is fully visible.
func (m *Model) scrollCursorIntoView() {
	abs, ok := m.cursorIndex()
	if !ok {
		return
	}
	for _, region := range m.cardRegions {
		if region.index != abs {
			continue
		}
		if region.startLine < m.listViewport.YOffset {
			m.listViewport.SetYOffset(region.startLine)
		} else if region.endLine >= m.listViewport.YOffset+m.listViewport.Height {
			m.listViewport.SetYOffset(region.endLine - m.listViewport.Height + 1)
		}
		return
	}
}

// cardAt maps a viewport-relative line to the absolute entry index of the
// card rendered there.
func (m *Model) cardAt(line int) (int, bool) {
	content := line + m.listViewport.YOffset
	for _, region := range m.cardRegions {
		if content >= region.startLine && content <= region.endLine {
			return region.index, true
		}
	}
	return 0, false
}

// openEditorFor loads the entry at index into the editor, moves the
// selection to it, and switches to the editor screen. Unresolvable
// indices are ignored.
func (m *Model) openEditorFor(index int) {
	note, ok := m.notebook.Get(index)
	if !ok {
		return
	}
	m.editor.LoadExisting(index, note)
	m.notebook.Select(index)
	m.syncCursorToSelection()
	m.screen = ScreenEditor
}

// openPageView shows the rendered page at index.
func (m *Model) openPageView(index int) {
	m.pageIndex = index
	m.pageViewport.SetYOffset(0)
	m.refreshPageView()
	m.screen = ScreenPageView
}

// contentWidth is the usable width inside the app frame.
func (m *Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

// updateLayoutSizes recalculates component sizes from the window size.
func (m *Model) updateLayoutSizes() {
	width := m.contentWidth()

	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}
	m.listViewport.Width = width
	m.listViewport.Height = listHeight

	pageHeight := m.height - 9
	if pageHeight < 5 {
		pageHeight = 5
	}
	m.pageViewport.Width = width
	m.pageViewport.Height = pageHeight

	editorHeight := m.height - 16
	if editorHeight < 3 {
		editorHeight = 3
	}
	m.editor.SetSize(width, editorHeight)

	m.searchInput.Width = width - 20

	m.md.SetWidth(width - 4)
	m.refreshList()
	if m.screen == ScreenPageView {
		m.refreshPageView()
	}
}
