// Package whack is whack-a-mole: moles pop out of holes faster and faster
// until the round clock runs out.
package whack

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "whackHighScore"

const (
	holeW, holeH = 11, 5
	flashSeconds = 0.2
)

// Game implements whack-a-mole.
type Game struct {
	cfg config.WhackConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	holes    []int // Ticks each mole stays up; 0 = empty hole
	bonked   []int // Ticks left on the hit flash
	spawner  *core.Spawner
	cursor   int
	timeLeft int
	hits     int
	misses   int
	escaped  int
	score    int
	best     int
	ticks    int
	gameOver bool
	paused   bool
}

// New creates a game using the tuning found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.WhackConfig]("whack"))
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.WhackConfig) *Game {
	cfg.Rows = max(cfg.Rows, 1)
	cfg.Cols = max(cfg.Cols, 1)
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("whack", registry.CategoryToy, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "whack" }

// Title returns the display name.
func (g *Game) Title() string { return "Whack-a-Mole" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset empties the holes and restarts the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	n := g.cfg.Rows * g.cfg.Cols
	g.holes = make([]int, n)
	g.bonked = make([]int, n)
	g.spawner = core.NewSpawner(cfg.Ticks(g.cfg.SpawnSeconds), cfg.Ticks(g.cfg.MinSpawnSeconds), g.cfg.SpawnShrink)
	g.cursor = n / 2
	g.timeLeft = cfg.Ticks(g.cfg.RoundSeconds)
	g.hits = 0
	g.misses = 0
	g.escaped = 0
	g.score = 0
	g.best = cfg.BestScore
	g.ticks = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	g.moveCursor(in)
	for _, hole := range g.targets(in) {
		g.whack(hole)
	}

	for i := range g.holes {
		if g.bonked[i] > 0 {
			g.bonked[i]--
		}
		if g.holes[i] > 0 {
			g.holes[i]--
			if g.holes[i] == 0 {
				g.escaped++
			}
		}
	}

	if g.spawner.Tick() {
		g.spawn()
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.gameOver = true
		g.best = max(g.best, g.score)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/g.cfg.Cols, g.cursor%g.cfg.Cols
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	row = core.Clamp(row, 0, g.cfg.Rows-1)
	col = core.Clamp(col, 0, g.cfg.Cols-1)
	g.cursor = row*g.cfg.Cols + col
}

// targets collects the holes hit this tick: the cursor on space, digits 1-9
// in reading order, and mouse clicks.
func (g *Game) targets(in core.InputFrame) []int {
	var out []int
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		out = append(out, g.cursor)
	}
	for _, ch := range in.Text {
		if i := int(ch - '1'); i >= 0 && i < len(g.holes) && i < 9 {
			out = append(out, i)
		}
	}
	for _, c := range in.Clicks {
		for i := range g.holes {
			if g.holeRect(i).Contains(c.X, c.Y) {
				out = append(out, i)
			}
		}
	}
	return out
}

func (g *Game) whack(hole int) {
	g.cursor = hole
	if g.holes[hole] > 0 {
		g.holes[hole] = 0
		g.bonked[hole] = g.rt.Ticks(flashSeconds)
		g.hits++
		g.score += g.cfg.HitPoints
		return
	}
	g.misses++
	g.score = max(g.score-g.cfg.MissPenalty, 0)
}

// spawn raises a mole in a random empty hole.
func (g *Game) spawn() {
	var empty []int
	for i, up := range g.holes {
		if up == 0 {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return
	}
	g.holes[empty[g.rng.Intn(len(empty))]] = g.rt.Ticks(g.cfg.UpSeconds)
}

func (g *Game) holeRect(i int) core.Rect {
	gridW := g.cfg.Cols * (holeW + 1)
	x0 := max((g.rt.ScreenW-gridW)/2, 0)
	return core.NewRect(x0+(i%g.cfg.Cols)*(holeW+1), 3+(i/g.cfg.Cols)*(holeH+1), holeW, holeH)
}

// Render draws the holes, moles and cursor.
func (g *Game) Render(dst *core.Screen) {
	rate := g.rt.Ticks(1)
	dst.DrawText(1, 0, fmt.Sprintf("Whack-a-Mole  Score: %d  Best: %d  Hits: %d  Misses: %d  Time: %ds",
		g.score, max(g.best, g.score), g.hits, g.misses, (g.timeLeft+rate-1)/rate))
	dst.DrawText(1, 1, "Keys 1-9, click, or arrows + space")

	for i := range g.holes {
		r := g.holeRect(i)
		frame := core.ColorGray
		if i == g.cursor {
			frame = core.ColorBrightYellow
		}
		prev := dst.Pen(frame)
		dst.DrawBox(r)
		dst.Pen(prev)
		if i < 9 {
			dst.SetColor(r.X+1, r.Y, rune('1'+i), core.ColorGray)
		}
		cx, cy := r.Center()
		switch {
		case g.bonked[i] > 0:
			dst.SetColor(cx, cy, '*', core.ColorBrightYellow)
		case g.holes[i] > 0:
			dst.Pen(core.ColorOrange)
			dst.DrawText(cx-2, cy, "(o.o)")
			dst.Pen(prev)
		default:
			dst.SetColor(cx, cy+1, '_', core.ColorGray)
		}
	}

	switch {
	case g.gameOver:
		dst.DrawOverlay("TIME'S UP", fmt.Sprintf("Hits: %d  Misses: %d  Escaped: %d", g.hits, g.misses, g.escaped),
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
