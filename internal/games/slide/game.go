// Package slide is the 15-puzzle: slide numbered tiles into order.
package slide

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "slideHighScore"

const (
	boardSize   = 4
	tileW       = 5
	tileH       = 3
	basePoint   = 1000
	movePenalty = 2
)

// Game implements the sliding puzzle.
type Game struct {
	rt    core.RuntimeConfig
	board *Board

	moves  int
	ticks  int
	score  int
	best   int
	won    bool
	paused bool
}

// New creates a new sliding puzzle.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("slide", registry.CategoryPuzzle, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "slide" }

// Title returns the display name.
func (g *Game) Title() string { return "Fifteen" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// OneShotActions implements registry.OneShot: one arrow, one slide.
func (g *Game) OneShotActions() []core.Action {
	return []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
}

// Reset deals a new solvable board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.board = Shuffled(rand.New(rand.NewSource(cfg.Seed)), boardSize)
	g.moves = 0
	g.ticks = 0
	g.score = 0
	g.best = cfg.BestScore
	g.won = false
	g.paused = false
}

// origin returns the top-left screen cell of the board.
func (g *Game) origin() core.Point {
	return core.Point{
		X: max((g.rt.ScreenW-boardSize*tileW)/2, 0),
		Y: max((g.rt.ScreenH-boardSize*tileH)/2, 1),
	}
}

// Step advances the game by one tick. Arrow keys move the tile next to the
// blank in the arrow's direction; clicks slide the clicked tile.
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

	blank := g.board.Blank()
	var from core.Point
	moved := false
	switch {
	case in.Has(core.ActionUp):
		from, moved = blank.Add(core.Orthogonal[2]), true
	case in.Has(core.ActionDown):
		from, moved = blank.Add(core.Orthogonal[0]), true
	case in.Has(core.ActionLeft):
		from, moved = blank.Add(core.Orthogonal[1]), true
	case in.Has(core.ActionRight):
		from, moved = blank.Add(core.Orthogonal[3]), true
	}
	if moved && g.board.Slide(from) {
		g.moves++
	}

	o := g.origin()
	for _, c := range in.Clicks {
		p := core.Point{X: (c.X - o.X) / tileW, Y: (c.Y - o.Y) / tileH}
		if c.X >= o.X && c.Y >= o.Y && g.board.Slide(p) {
			g.moves++
		}
	}

	if g.board.IsSolved() {
		g.won = true
		g.score = max(basePoint-g.moves*movePenalty, 1)
		g.best = max(g.best, g.score)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the tiles.
func (g *Game) Render(dst *core.Screen) {
	secs := g.ticks / g.rt.Ticks(1)
	dst.DrawText(1, 0, fmt.Sprintf("Fifteen  Moves: %d  Time: %d:%02d  Best: %d", g.moves, secs/60, secs%60, g.best))

	o := g.origin()
	n := g.board.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := g.board.At(x, y)
			if v == 0 {
				continue
			}
			r := core.NewRect(o.X+x*tileW, o.Y+y*tileH, tileW, tileH)
			color := core.ColorCyan
			if v == y*n+x+1 {
				color = core.ColorGreen
			}
			prev := dst.Pen(color)
			dst.DrawBox(r)
			dst.DrawText(r.X+1, r.Y+1, fmt.Sprintf("%3d", v))
			dst.Pen(prev)
		}
	}

	switch {
	case g.won:
		dst.DrawOverlay("SOLVED!", fmt.Sprintf("%d moves  |  Score: %d", g.moves, g.score), "Press R to play again")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
		Won:      g.won,
	}
}
