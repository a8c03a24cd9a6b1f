package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/games/memory"
)

var padKeys = []tea.KeyType{tea.KeyUp, tea.KeyRight, tea.KeyDown, tea.KeyLeft}

func waitForPhase(t *testing.T, m *GameModel, g *memory.Game, p memory.Phase) {
	t.Helper()
	for i := 0; i < 2000 && g.Phase() != p; i++ {
		m.tickOnce()
	}
	require.Equal(t, p, g.Phase())
}

func TestOneShotActionsIncludeGameIntents(t *testing.T) {
	set := oneShotActions(memory.New())
	assert.True(t, set[core.ActionJump])
	assert.True(t, set[core.ActionUp])

	set = oneShotActions(&counterGame{})
	assert.False(t, set[core.ActionUp], "direction keys repeat unless the game says otherwise")
}

func TestHeldPadPressesOnce(t *testing.T) {
	g := memory.New()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, cfg, Options{})
	clock := newFakeClock(time.Second)
	m.now = clock.Now
	m.Init()

	waitForPhase(t, m, g, memory.AwaitingInput)
	m.Update(tea.KeyMsg{Type: padKeys[g.Sequence()[0]]})
	m.tickOnce()
	waitForPhase(t, m, g, memory.AwaitingInput)
	seq := g.Sequence()
	require.Len(t, seq, 2)

	// Hold the first pad: auto-repeat every 30ms, one event per tick.
	// A second delivery would either fail the game or finish the round.
	hold := tea.KeyMsg{Type: padKeys[seq[0]]}
	for i := range 5 {
		if i == 1 {
			clock.step = 30 * time.Millisecond
		}
		m.Update(hold)
		m.tickOnce()
	}

	assert.Equal(t, memory.AwaitingInput, g.Phase())
	assert.Equal(t, 1, g.State().Score, "only the first round is complete")
}
