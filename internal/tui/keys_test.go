package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_VimAndArrowMovement(t *testing.T) {
	keys := DefaultKeyMap()

	assert.True(t, key.Matches(keyRune('j'), keys.Down))
	assert.True(t, key.Matches(keyRune('k'), keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, keys.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, keys.Left))
}

func TestDefaultKeyMap_QuitBindings(t *testing.T) {
	keys := DefaultKeyMap()

	assert.True(t, key.Matches(keyRune('q'), keys.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Quit))
}

func TestKeyMap_HelpEntriesComplete(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())

	for _, row := range keys.FullHelp() {
		for _, binding := range row {
			assert.NotEmpty(t, binding.Keys())
			assert.NotEmpty(t, binding.Help().Key)
			assert.NotEmpty(t, binding.Help().Desc)
		}
	}
}
