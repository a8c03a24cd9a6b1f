// Package flappy implements a Flappy Bird-style game.
// The player flaps through gaps in scrolling pipes; gravity pulls the bird
// down every tick.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "flappyHighScore"

// Visual characters for rendering
const (
	BirdChar      = '▶'
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Game implements the flappy game logic.
type Game struct {
	cfg  config.FlappyConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig

	bird     core.Body
	pipes    *PipeManager
	groundY  int
	score    int
	best     int
	ticks    int
	gameOver bool
	paused   bool
}

// New creates a game using the tuning found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.FlappyConfig]("flappy"))
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("flappy", registry.CategoryRunner, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy Bird" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.groundY = cfg.ScreenH - 1
	g.bird = core.Body{
		Pos:  core.Vec{X: float64(g.cfg.Player.X), Y: float64(cfg.ScreenH) / 2},
		W:    float64(g.cfg.Player.Width),
		H:    float64(g.cfg.Player.Height),
		Kind: core.KindPlayer,
	}
	g.pipes = NewPipeManager(cfg.Seed, cfg.ScreenW, g.groundY, &g.cfg, g.diff)
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

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.bird.Vel.Y = g.cfg.Physics.JumpImpulse
	}
	g.bird.Integrate(core.Vec{Y: g.cfg.Physics.Gravity})
	g.bird.Vel.Y = min(g.bird.Vel.Y, g.cfg.Physics.MaxFallSpeed)

	g.score += g.pipes.Update(g.bird.Pos.X, g.score, g.ticks)

	g.gameOver = g.lost()
	if g.gameOver {
		g.best = max(g.best, g.score)
	}

	return core.StepResult{State: g.State()}
}

// lost is the per-tick loss predicate: ceiling, ground or a pipe.
func (g *Game) lost() bool {
	box := g.bird.Box()
	if box.Top < 0 {
		return true
	}
	if box.Bottom > float64(g.groundY) {
		return true
	}
	return g.pipes.Hits(box)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Pen(core.ColorGray)
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	dst.Pen(core.ColorGreen)
	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	dst.Pen(core.ColorBrightYellow)
	bx, by := int(g.bird.Pos.X), int(g.bird.Pos.Y)
	for dy := 0; dy < g.cfg.Player.Height; dy++ {
		for dx := 0; dx < g.cfg.Player.Width; dx++ {
			ch := BodyChar
			if dx == g.cfg.Player.Width-1 && dy == 0 {
				ch = BirdChar
			}
			dst.Set(bx+dx, by+dy, ch)
		}
	}

	dst.Pen(core.ColorDefault)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.score, max(g.best, g.score)))

	switch {
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// drawPipe renders both sections of a pipe with caps facing the gap.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	width := g.cfg.Obstacles.PipeWidth
	x := int(p.X)
	bottomY := p.GapY + p.GapHeight

	dst.DrawRect(core.NewRect(x, 0, width, p.GapY), PipeChar)
	if p.GapY > 0 {
		dst.DrawHLine(x, p.GapY-1, width, PipeCapTop)
	}
	dst.DrawRect(core.NewRect(x, bottomY, width, g.groundY-bottomY), PipeChar)
	if bottomY < g.groundY {
		dst.DrawHLine(x, bottomY, width, PipeCapBottom)
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
