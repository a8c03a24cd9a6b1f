package kingdom

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

var _ registry.Inspectable = (*Game)(nil)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestTapEarnsGold(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 5; i++ {
		g.Step(press(core.ActionJump))
	}
	assert.EqualValues(t, 5, g.gold)
	assert.Equal(t, 5, g.State().Score)
}

func TestCostGrows(t *testing.T) {
	g := newTestGame()
	assert.EqualValues(t, 10, g.Cost(0))
	g.owned[0] = 2
	assert.EqualValues(t, 13, g.Cost(0)) // round(13.225)
	g.owned[0] = 10
	assert.EqualValues(t, 40, g.Cost(0)) // round(40.455)
}

func TestBuyingNeedsGold(t *testing.T) {
	g := newTestGame()
	in := core.NewInputFrame()
	in.Type('1')
	g.Step(in)
	assert.Zero(t, g.owned[0])
	assert.Contains(t, g.message, "costs")

	require.NoError(t, g.Poke("gold", "10"))
	g.Step(in)
	assert.EqualValues(t, 1, g.owned[0])
	assert.Zero(t, g.gold)
}

func TestIncomeArrivesEverySecond(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Poke("farms", "2"))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.EqualValues(t, 16, g.gold)
	assert.Equal(t, 16, g.State().Score)
}

func TestPokeValidation(t *testing.T) {
	g := newTestGame()
	assert.ErrorIs(t, g.Poke("gold", "-5"), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("gold", "lots"), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("click_power", "0"), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("castles", "1"), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("dragons", "1"), ErrUnknownField)

	require.NoError(t, g.Poke("click_power", "7"))
	g.Step(press(core.ActionJump))
	assert.EqualValues(t, 7, g.gold)
}

func TestInspectListsEveryField(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Poke("mines", "3"))
	got := map[string]string{}
	for _, f := range g.Inspect() {
		got[f.Name] = f.Value
	}
	assert.Equal(t, "3", got["mines"])
	assert.Equal(t, "1", got["click_power"])
	for _, b := range Buildings {
		assert.Contains(t, got, b.Field)
	}
}

func TestCastleWins(t *testing.T) {
	g := newTestGame()
	require.NoError(t, g.Poke("gold", "25000"))
	g.selected = castle
	g.Step(press(core.ActionConfirm))
	assert.True(t, g.State().Won)
	assert.True(t, g.State().GameOver)
	g.Render(core.NewScreen(80, 24))
}

func TestMenuNavigationWraps(t *testing.T) {
	g := newTestGame()
	g.Step(press(core.ActionUp))
	assert.Equal(t, len(Buildings)-1, g.selected)
	g.Step(press(core.ActionDown))
	assert.Equal(t, 0, g.selected)
}

func TestHugeLedgerStaysBounded(t *testing.T) {
	g := newTestGame()
	assert.ErrorIs(t, g.Poke("farms", "2000000000000000000"), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("mines", strconv.Itoa(MaxOwned+1)), core.ErrInvalidInput)
	assert.ErrorIs(t, g.Poke("click_power", strconv.Itoa(MaxClickPower+1)), core.ErrInvalidInput)

	for _, f := range []string{"peasants", "farms", "mines"} {
		require.NoError(t, g.Poke(f, strconv.Itoa(MaxOwned)))
	}
	require.NoError(t, g.Poke("click_power", strconv.Itoa(MaxClickPower)))
	require.NoError(t, g.Poke("gold", strconv.FormatInt(math.MaxInt64, 10)))
	g.earned = math.MaxInt64 - 1

	for i := 0; i < 61; i++ {
		g.Step(press(core.ActionJump))
	}
	assert.EqualValues(t, int64(math.MaxInt64), g.gold)
	assert.EqualValues(t, int64(math.MaxInt64), g.earned)
	assert.Equal(t, math.MaxInt32, g.State().Score)
	assert.Positive(t, g.Income())
}

func TestCostIsClamped(t *testing.T) {
	g := newTestGame()
	g.owned[2] = 400
	assert.EqualValues(t, int64(MaxCost), g.Cost(2))
	g.owned[castle] = 10_000
	assert.EqualValues(t, int64(MaxCost), g.Cost(castle))

	in := core.NewInputFrame()
	in.Type('3')
	g.Step(in)
	assert.EqualValues(t, 400, g.owned[2], "a full building cannot be bought")
	assert.Zero(t, g.gold)
}
