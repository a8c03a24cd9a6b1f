package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minigames/internal/core"
)

func TestMenuCursorSkipsHeaders(t *testing.T) {
	m := NewMenuModel(nil, nil)

	g, ok := m.Selected()
	require.True(t, ok, "cursor starts on a game, not a header")
	assert.Equal(t, "counter", g.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	g, _ = m.Selected()
	assert.Equal(t, "counter", g.ID, "cursor cannot move onto a header")

	assert.Contains(t, m.View(), "TOY")
}

func TestMenuBestScoreShown(t *testing.T) {
	m := NewMenuModel(nil, map[string]int{"counterHighScore": 1234})
	assert.Contains(t, m.View(), "1,234")
}

func TestSessionOpensGameAndReturns(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), Options{})
	assert.Equal(t, "menu", s.Screen())

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, OpenGameMsg{GameID: "counter"}, msg)

	_, cmd = s.Update(msg)
	assert.NotNil(t, cmd, "opening a game starts its tick loop")
	assert.Equal(t, "game", s.Screen())
	assert.Contains(t, s.View(), "score 0")

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, "menu", s.Screen())
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), Options{})

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, "scores", s.Screen())
	assert.Contains(t, s.View(), "No scores recorded yet")

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, "menu", s.Screen())
}
