package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevasseur/faitout/internal/app"
	"github.com/mlevasseur/faitout/internal/domain"
	"github.com/mlevasseur/faitout/internal/infra/config"
	"github.com/mlevasseur/faitout/internal/infra/export"
	"github.com/mlevasseur/faitout/internal/infra/notestore"
	"github.com/mlevasseur/faitout/internal/infra/settingstore"
)

func TestNew_LoadsPersistedState(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.DataDir = t.TempDir()

	notes := notestore.New(cfg.NotesPath())
	require.NoError(t, notes.Save([]domain.Note{domain.NewNote("Saved before", "body", nil)}))

	settings := settingstore.New(cfg.SettingsPath())
	s := domain.DefaultSettings()
	s.SelectedTheme = domain.ThemeNord
	require.NoError(t, settings.Save(s))

	c := app.NewWithDeps(cfg, notes, settings, export.New(cfg.ExportsDir()), nil)
	m := New(c)

	assert.Equal(t, 1, m.notebook.Len())
	assert.Equal(t, domain.ThemeNord, m.settings.SelectedTheme)
	assert.Equal(t, nordPalette.Bg, m.palette.Bg)
}

func TestNew_StartsEmptyWithoutFiles(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 0, m.notebook.Len())
	_, ok := m.notebook.Selected()
	assert.False(t, ok, "startup has no selection")
	assert.Equal(t, ScreenNotebook, m.screen)
	assert.Equal(t, domain.DefaultSettings(), m.settings)
}

func TestMoveCursor_ClampsAndSelects(t *testing.T) {
	m := newTestModel(t)
	seedPages(m, "First", "Second", "Third")

	m.moveCursor(1)
	selected, ok := m.notebook.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, selected)

	m.moveCursor(10)
	selected, _ = m.notebook.Selected()
	assert.Equal(t, 2, selected)

	m.moveCursor(-10)
	selected, _ = m.notebook.Selected()
	assert.Equal(t, 0, selected)
}

func TestMoveCursor_EmptyNotebookIsNoop(t *testing.T) {
	m := newTestModel(t)

	m.moveCursor(1)

	assert.Equal(t, 0, m.cursor)
	_, ok := m.notebook.Selected()
	assert.False(t, ok)
}

func TestSyncCursorToSelection_TracksFilteredPosition(t *testing.T) {
	m := newTestModel(t)
	seedPages(m, "Groceries", "Travel plans", "Travel journal")

	m.notebook.SetSearch("travel")
	m.notebook.Select(2)
	m.syncCursorToSelection()

	assert.Equal(t, 1, m.cursor, "cursor is a position in the filtered view")
}

func TestSetStatus_BumpsSequence(t *testing.T) {
	m := newTestModel(t)

	cmd := m.setStatus("hello", false)

	require.NotNil(t, cmd)
	assert.Equal(t, "hello", m.status)
	assert.Equal(t, 1, m.statusSeq)

	m.setStatus("again", true)
	assert.Equal(t, 2, m.statusSeq)
	assert.True(t, m.statusIsErr)
}

func TestUpdateLayoutSizes_Minimums(t *testing.T) {
	m := newTestModel(t)
	m.width = 30
	m.height = 10

	m.updateLayoutSizes()

	assert.Equal(t, 40, m.listViewport.Width, "width floors at the minimum")
	assert.Equal(t, 5, m.listViewport.Height)
	assert.Equal(t, 3, m.editor.height)
}
