// Package kingdom is an incremental builder: tap for gold, buy buildings
// that earn gold on their own, and save up for the castle. Its ledger is
// open to the player through the console (set gold 500).
package kingdom

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "kingdomHighScore"

// ErrUnknownField is returned by Poke for a name Inspect does not list.
var ErrUnknownField = errors.New("unknown field")

const (
	costGrowth = 1.15
	menuTop    = 6

	// MaxOwned caps each building count so prices stay below MaxCost.
	MaxOwned = 250
	// MaxCost bounds every price, leaving headroom for gold arithmetic.
	MaxCost = math.MaxInt64 / 2
	// MaxClickPower bounds the gold earned by one tap.
	MaxClickPower = 1_000_000_000
)

// Building is something gold can buy.
type Building struct {
	Name   string
	Base   int64 // Price of the first one
	Income int64 // Gold per second each
	Field  string
}

// Buildings in shop order. The castle ends the game.
var Buildings = []Building{
	{Name: "Peasant", Base: 10, Income: 1, Field: "peasants"},
	{Name: "Farm", Base: 100, Income: 8, Field: "farms"},
	{Name: "Mine", Base: 1000, Income: 50, Field: "mines"},
	{Name: "Castle", Base: 25000, Field: "castles"},
}

const castle = 3

// Game implements the kingdom builder.
type Game struct {
	rt core.RuntimeConfig

	gold       int64
	earned     int64 // Lifetime gold, the score
	clickPower int64
	owned      []int64
	selected   int
	secTimer   int
	message    string
	ticks      int
	best       int
	won        bool
	paused     bool
}

// New creates a new kingdom.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("kingdom", registry.CategoryToy, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "kingdom" }

// Title returns the display name.
func (g *Game) Title() string { return "Tiny Kingdom" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset starts an empty kingdom.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.gold = 0
	g.earned = 0
	g.clickPower = 1
	g.owned = make([]int64, len(Buildings))
	g.selected = 0
	g.secTimer = 0
	g.message = ""
	g.ticks = 0
	g.best = cfg.BestScore
	g.won = false
	g.paused = false
}

// Cost returns the price of the next building of index i.
// Prices never exceed MaxCost.
func (g *Game) Cost(i int) int64 {
	c, err := core.Finite(math.Round(float64(Buildings[i].Base) * math.Pow(costGrowth, float64(g.owned[i]))))
	if err != nil || c >= MaxCost {
		return MaxCost
	}
	return int64(c)
}

// Income returns gold earned per second.
func (g *Game) Income() int64 {
	var n int64
	for i, b := range Buildings {
		n = core.SaturatingAdd(n, b.Income*min(g.owned[i], MaxOwned))
	}
	return n
}

// earn adds n to the treasury and the score, saturating at MaxInt64.
func (g *Game) earn(n int64) {
	g.gold = core.SaturatingAdd(g.gold, n)
	g.earned = core.SaturatingAdd(g.earned, n)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	if in.Has(core.ActionJump) {
		g.earn(g.clickPower)
	}
	switch {
	case in.Has(core.ActionUp):
		g.selected = (g.selected + len(Buildings) - 1) % len(Buildings)
	case in.Has(core.ActionDown):
		g.selected = (g.selected + 1) % len(Buildings)
	}
	if in.Has(core.ActionConfirm) {
		g.buy(g.selected)
	}
	for _, ch := range in.Text {
		if i := int(ch - '1'); i >= 0 && i < len(Buildings) {
			g.buy(i)
		}
	}
	for _, c := range in.Clicks {
		if i := c.Y - menuTop; i >= 0 && i < len(Buildings) {
			g.buy(i)
		} else {
			g.earn(g.clickPower)
		}
	}

	g.secTimer++
	if g.secTimer >= g.rt.Ticks(1) {
		g.secTimer = 0
		g.earn(g.Income())
	}

	return core.StepResult{State: g.State()}
}

// buy purchases one building if affordable.
func (g *Game) buy(i int) {
	g.selected = i
	if g.owned[i] >= MaxOwned {
		g.message = fmt.Sprintf("No room for another %s", Buildings[i].Name)
		return
	}
	cost := g.Cost(i)
	if g.gold < cost {
		g.message = fmt.Sprintf("%s costs %s gold", Buildings[i].Name, humanize.Comma(cost))
		return
	}
	g.gold -= cost
	g.owned[i]++
	g.message = fmt.Sprintf("Built a %s", Buildings[i].Name)
	if i == castle {
		g.won = true
		g.best = max(g.best, g.score())
	}
}

func (g *Game) score() int {
	return int(min(g.earned, math.MaxInt32))
}

// Inspect implements registry.Inspectable.
func (g *Game) Inspect() []registry.Field {
	fields := []registry.Field{
		{Name: "gold", Value: strconv.FormatInt(g.gold, 10)},
		{Name: "click_power", Value: strconv.FormatInt(g.clickPower, 10)},
	}
	for i, b := range Buildings {
		fields = append(fields, registry.Field{Name: b.Field, Value: strconv.FormatInt(g.owned[i], 10)})
	}
	return fields
}

// Poke implements registry.Inspectable. Values must be non-negative
// integers; building counts are capped at MaxOwned and click_power at
// MaxClickPower. Setting gold does not count toward the score.
func (g *Game) Poke(name, value string) error {
	n, err := core.ParseInt(value)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("kingdom: %s = %d: %w", name, n, core.ErrInvalidInput)
	}
	v := int64(n)
	switch name {
	case "gold":
		g.gold = v
		return nil
	case "click_power":
		if v == 0 || v > MaxClickPower {
			return fmt.Errorf("kingdom: click_power = %d, want 1..%d: %w", v, MaxClickPower, core.ErrInvalidInput)
		}
		g.clickPower = v
		return nil
	}
	for i, b := range Buildings {
		if b.Field == name {
			if i == castle {
				return fmt.Errorf("kingdom: %s must be built: %w", name, core.ErrInvalidInput)
			}
			if v > MaxOwned {
				return fmt.Errorf("kingdom: %s = %d, max %d: %w", name, v, MaxOwned, core.ErrInvalidInput)
			}
			g.owned[i] = v
			return nil
		}
	}
	return fmt.Errorf("kingdom: %q: %w", name, ErrUnknownField)
}

// Render draws the treasury and the shop.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Tiny Kingdom  Earned: %s  Best: %s",
		humanize.Comma(g.earned), humanize.Comma(int64(g.best))))

	dst.Pen(core.ColorBrightYellow)
	dst.DrawText(2, 2, fmt.Sprintf("Gold: %s", humanize.Comma(g.gold)))
	dst.Pen(core.ColorDefault)
	dst.DrawText(2, 3, fmt.Sprintf("Income: %s/s   Tap: +%s (space)",
		humanize.Comma(g.Income()), humanize.Comma(g.clickPower)))

	for i, b := range Buildings {
		color, marker := core.ColorDefault, "  "
		if i == g.selected {
			color, marker = core.ColorBrightCyan, "> "
		}
		if g.gold < g.Cost(i) {
			color = core.ColorGray
		}
		dst.Pen(color)
		line := fmt.Sprintf("%s%d. %-8s x%-4d cost %s", marker, i+1, b.Name, g.owned[i], humanize.Comma(g.Cost(i)))
		if b.Income > 0 {
			line += fmt.Sprintf("  (+%d/s)", b.Income)
		}
		dst.DrawText(2, menuTop+i, line)
	}
	dst.Pen(core.ColorDefault)
	dst.DrawText(2, menuTop+len(Buildings)+1, g.message)
	dst.DrawText(2, menuTop+len(Buildings)+3, "Press : for the royal ledger (set <field> <value>)")

	switch {
	case g.won:
		dst.DrawOverlay("THE CASTLE STANDS", fmt.Sprintf("Lifetime gold: %s", humanize.Comma(g.earned)), "Press R to found a new kingdom")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.won,
		Paused:   g.paused,
		Won:      g.won,
	}
}
