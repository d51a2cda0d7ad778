package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlevasseur/faitout/internal/domain"
)

// noEditing marks an editor composing a brand new page.
const noEditing = -1

// Editor fields, in tab order.
const (
	fieldTitle = iota
	fieldTags
	fieldBody
)

// editorModel holds the page composition state: the three inputs, the
// optional index of the entry being edited, and the view mode. The body is
// only editable in split mode; preview-only mode shows the rendered
// markdown instead.
type editorModel struct {
	title   textinput.Model
	tags    textinput.Model
	body    textarea.Model
	width   int
	height  int
	editing int
	focus   int
	split   bool
}

func newEditor() editorModel {
	ti := textinput.New()
	ti.Placeholder = "Page title"
	ti.CharLimit = 200
	ti.Prompt = ""

	tg := textinput.New()
	tg.Placeholder = "Tags (comma separated)"
	tg.CharLimit = 200
	tg.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Fill the page with your thoughts..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	e := editorModel{
		title:   ti,
		tags:    tg,
		body:    ta,
		editing: noEditing,
	}
	e.setFocus(fieldTitle)
	return e
}

// LoadNew resets the editor to a fresh page buffer in preview-only mode.
func (e *editorModel) LoadNew() {
	e.title.SetValue("")
	e.tags.SetValue("")
	e.body.SetValue("")
	e.editing = noEditing
	e.split = false
	e.setFocus(fieldTitle)
	e.layout()
}

// LoadExisting fills the editor from an existing entry.
func (e *editorModel) LoadExisting(index int, note domain.Note) {
	e.title.SetValue(note.Title)
	e.tags.SetValue(strings.Join(note.Tags, ", "))
	e.body.SetValue(note.Body)
	e.editing = index
	e.split = false
	e.setFocus(fieldTitle)
	e.layout()
}

// Editing returns the index of the entry being edited, if any.
func (e *editorModel) Editing() (int, bool) {
	if e.editing == noEditing {
		return 0, false
	}
	return e.editing, true
}

// AdjustAfterDelete keeps the editing reference pointing at the same entry
// after the entry at index was removed. When the edited entry itself was
// removed the editor resets to a new page.
func (e *editorModel) AdjustAfterDelete(index int) {
	switch {
	case e.editing == index:
		e.LoadNew()
	case e.editing > index:
		e.editing--
	}
}

// BuildNote assembles a note from the current inputs. The title loses
// surrounding whitespace and the body its trailing newlines. Returns false
// when both come out empty, which callers treat as "nothing to save".
func (e *editorModel) BuildNote() (domain.Note, bool) {
	title := strings.TrimSpace(e.title.Value())
	body := strings.TrimRight(e.body.Value(), "\n")
	if title == "" && body == "" {
		return domain.Note{}, false
	}
	return domain.NewNote(title, body, domain.ParseTags(e.tags.Value())), true
}

// TogglePreview switches between preview-only and split editing. Entering
// split mode focuses the body; leaving it moves focus back to the title.
func (e *editorModel) TogglePreview() {
	e.split = !e.split
	if e.split {
		e.setFocus(fieldBody)
	} else if e.focus == fieldBody {
		e.setFocus(fieldTitle)
	}
	e.layout()
}

// Split reports whether the editor is in split mode.
func (e *editorModel) Split() bool {
	return e.split
}

// Header returns the editor heading.
func (e *editorModel) Header() string {
	if e.editing != noEditing {
		return "Edit page"
	}
	return "New page"
}

// SaveLabel returns the label of the save action.
func (e *editorModel) SaveLabel() string {
	if e.editing != noEditing {
		return "Update page"
	}
	return "Save page"
}

// ToggleLabel names the mode the preview toggle would switch to.
func (e *editorModel) ToggleLabel() string {
	if e.split {
		return "Preview only"
	}
	return "Edit with preview"
}

func (e *editorModel) fieldCount() int {
	if e.split {
		return 3
	}
	return 2
}

// FocusNext moves focus to the next field in tab order.
func (e *editorModel) FocusNext() {
	e.setFocus((e.focus + 1) % e.fieldCount())
}

// FocusPrev moves focus to the previous field in tab order.
func (e *editorModel) FocusPrev() {
	e.setFocus((e.focus + e.fieldCount() - 1) % e.fieldCount())
}

func (e *editorModel) setFocus(field int) {
	e.focus = field
	e.title.Blur()
	e.tags.Blur()
	e.body.Blur()
	switch field {
	case fieldTitle:
		e.title.Focus()
	case fieldTags:
		e.tags.Focus()
	case fieldBody:
		e.body.Focus()
	}
}

// Update routes input to the focused field.
func (e *editorModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.focus {
	case fieldTitle:
		e.title, cmd = e.title.Update(msg)
	case fieldTags:
		e.tags, cmd = e.tags.Update(msg)
	case fieldBody:
		e.body, cmd = e.body.Update(msg)
	}
	return cmd
}

// SetSize sets the space available to the editor fields.
func (e *editorModel) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.layout()
}

func (e *editorModel) layout() {
	inputWidth := e.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	e.title.Width = inputWidth
	e.tags.Width = inputWidth

	bodyWidth := e.width
	if e.split {
		bodyWidth = e.width/2 - 1
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	bodyHeight := e.height
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	e.body.SetWidth(bodyWidth - 4)
	e.body.SetHeight(bodyHeight)
}

// applyStyles restyles the embedded inputs for the active palette.
func (e *editorModel) applyStyles(p ColorPalette) {
	prompt := lipgloss.NewStyle().Foreground(p.Primary)
	text := lipgloss.NewStyle().Foreground(p.Text)
	placeholder := lipgloss.NewStyle().Foreground(p.TextFaint)

	e.title.PromptStyle = prompt
	e.title.TextStyle = text
	e.title.PlaceholderStyle = placeholder

	e.tags.PromptStyle = prompt
	e.tags.TextStyle = text
	e.tags.PlaceholderStyle = placeholder

	e.body.FocusedStyle.Text = text
	e.body.FocusedStyle.Placeholder = placeholder
	e.body.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(p.BgRaised)
	e.body.BlurredStyle.Text = text
	e.body.BlurredStyle.Placeholder = placeholder
	e.body.BlurredStyle.CursorLine = lipgloss.NewStyle()
}
