// Package life is Conway's Game of Life with an editable board. The run
// ends when the colony dies out.
package life

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

const (
	hudHeight    = 1
	seedDensity  = 0.25
	genEvery     = 6 // Ticks per generation while running
	maxW, maxH   = 60, 22
	aliveGlyph   = '█'
	cursorGlyph  = '+'
)

func alive(v bool) bool { return v }

// Game implements the Life toy.
type Game struct {
	rng *rand.Rand

	front, back *core.Grid[bool]
	cursor      core.Point
	running     bool
	generation  int
	peak        int
	timer       int
	ticks       int
	gameOver    bool
	paused      bool
}

// New creates a new Life board.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("life", registry.CategoryToy, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "life" }

// Title returns the display name.
func (g *Game) Title() string { return "Game of Life" }

// Reset seeds a random colony sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	w := max(min(cfg.ScreenW, maxW), 3)
	h := max(min(cfg.ScreenH-hudHeight, maxH), 3)
	g.front = core.NewGrid[bool](w, h)
	g.back = core.NewGrid[bool](w, h)
	g.front.Each(func(x, y int, _ bool) {
		_ = g.front.Set(x, y, g.rng.Float64() < seedDensity)
	})
	g.cursor = core.Point{X: w / 2, Y: h / 2}
	g.running = false
	g.generation = 0
	g.peak = g.Population()
	g.timer = 0
	g.ticks = 0
	g.gameOver = false
	g.paused = false
}

// Population counts live cells.
func (g *Game) Population() int {
	return g.front.Count(alive)
}

// Advance computes one generation into the back buffer and swaps buffers.
// Cells beyond the edge are dead.
func (g *Game) Advance() {
	g.front.Each(func(x, y int, v bool) {
		n := g.front.Neighbors8(x, y, alive)
		_ = g.back.Set(x, y, n == 3 || (v && n == 2))
	})
	g.front, g.back = g.back, g.front
	g.generation++
	g.peak = max(g.peak, g.Population())
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

	var d core.Point
	switch {
	case in.Has(core.ActionUp):
		d = core.Orthogonal[0]
	case in.Has(core.ActionRight):
		d = core.Orthogonal[1]
	case in.Has(core.ActionDown):
		d = core.Orthogonal[2]
	case in.Has(core.ActionLeft):
		d = core.Orthogonal[3]
	}
	if next := g.cursor.Add(d); g.front.InBounds(next.X, next.Y) {
		g.cursor = next
	}

	if in.Has(core.ActionJump) {
		_ = g.front.Set(g.cursor.X, g.cursor.Y, !g.front.At(g.cursor.X, g.cursor.Y))
	}
	for _, c := range in.Clicks {
		p := core.Point{X: c.X, Y: c.Y - hudHeight}
		if g.front.InBounds(p.X, p.Y) {
			g.cursor = p
			_ = g.front.Set(p.X, p.Y, !g.front.At(p.X, p.Y))
		}
	}
	if in.Has(core.ActionBack) {
		g.front.Fill(false)
		g.running = false
	}
	if in.Has(core.ActionConfirm) {
		g.running = !g.running
		g.timer = 0
	}

	if g.running {
		g.timer++
		if g.timer >= genEvery {
			g.timer = 0
			g.Advance()
			if g.Population() == 0 {
				g.gameOver = true
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// Render draws the colony and the edit cursor.
func (g *Game) Render(dst *core.Screen) {
	mode := "editing"
	if g.running {
		mode = "running"
	}
	dst.DrawText(1, 0, fmt.Sprintf("Life  Gen: %d  Pop: %d  Peak: %d  [%s]  Space toggle, Enter run, Backspace clear",
		g.generation, g.Population(), g.peak, mode))

	g.front.Each(func(x, y int, v bool) {
		if v {
			dst.SetColor(x, hudHeight+y, aliveGlyph, core.ColorGreen)
		}
	})
	if !g.running {
		glyph := cursorGlyph
		if g.front.At(g.cursor.X, g.cursor.Y) {
			glyph = '▓'
		}
		dst.SetColor(g.cursor.X, hudHeight+g.cursor.Y, glyph, core.ColorBrightYellow)
	}

	switch {
	case g.gameOver:
		dst.DrawOverlay("EXTINCT", fmt.Sprintf("Survived %d generations", g.generation), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state. The score is the generation count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.generation,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
