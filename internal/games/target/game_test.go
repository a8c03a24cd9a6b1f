package target

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minigames/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func typeAndSubmit(g *Game, text string) {
	in := core.NewInputFrame()
	in.Type([]rune(text)...)
	in.Set(core.ActionConfirm)
	g.Step(in)
}

func TestDealShape(t *testing.T) {
	g := newTestGame(1)
	nums := g.Numbers()
	require.Len(t, nums, 6)
	assert.Contains(t, largeNumbers, nums[0])
	assert.Contains(t, largeNumbers, nums[1])
	assert.NotEqual(t, nums[0], nums[1])
	for _, n := range nums[2:] {
		assert.True(t, n >= 1 && n <= 10, "small number %d", n)
	}
	assert.True(t, g.Target() >= 101 && g.Target() <= 999)
	assert.True(t, g.WantsText())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 10, Points(decimal.NewFromInt(250), 250))
	assert.Equal(t, 7, Points(decimal.NewFromInt(245), 250))
	assert.Equal(t, 5, Points(decimal.NewFromInt(260), 250))
	assert.Equal(t, 0, Points(decimal.NewFromInt(100), 250))
	assert.Equal(t, 0, Points(decimal.RequireFromString("250.5"), 250))
}

func TestExactAnswerScores(t *testing.T) {
	g := newTestGame(2)
	g.numbers = []int{25, 50, 1, 2, 3, 4}
	g.target = 150

	typeAndSubmit(g, "25 + 50 * 2")
	assert.Equal(t, 10, g.score)
	assert.True(t, g.phase.Is(Feedback))
	assert.False(t, g.WantsText())
}

func TestUnavailableNumberKeepsRoundOpen(t *testing.T) {
	g := newTestGame(3)
	g.numbers = []int{25, 50, 1, 2, 3, 4}
	g.target = 150

	typeAndSubmit(g, "25 + 25")
	assert.True(t, g.phase.Is(Solving), "reusing a number is rejected")
	assert.Contains(t, g.message, "not available")

	g.input = g.input[:0]
	typeAndSubmit(g, "4 / 0")
	assert.True(t, g.phase.Is(Solving))
	assert.Contains(t, g.message, "invalid input")
	assert.Equal(t, 0, g.score)
}

func TestBackspaceEditsInput(t *testing.T) {
	g := newTestGame(4)
	in := core.NewInputFrame()
	in.Type('1', '2', '3')
	g.Step(in)
	in = core.NewInputFrame()
	in.Set(core.ActionBack)
	g.Step(in)
	assert.Equal(t, "12", string(g.input))
}

func TestGameEndsAfterAllRounds(t *testing.T) {
	g := newTestGame(5)
	for r := 0; r < rounds; r++ {
		n := g.Numbers()[2]
		typeAndSubmit(g, fmt.Sprint(n))
		require.True(t, g.phase.Is(Feedback), "round %d: %s", r, g.message)
		for i := 0; i < 1000 && g.phase.Is(Feedback); i++ {
			g.Step(core.NewInputFrame())
		}
	}
	assert.True(t, g.State().GameOver)
	g.Render(core.NewScreen(80, 24))
}

func TestRoundTimesOut(t *testing.T) {
	g := newTestGame(6)
	for i := 0; i < g.rt.Ticks(roundSeconds); i++ {
		g.Step(core.NewInputFrame())
	}
	assert.True(t, g.phase.Is(Feedback))
	assert.Contains(t, g.message, "Time's up")
}
