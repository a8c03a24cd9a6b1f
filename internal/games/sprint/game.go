// Package sprint implements Shadow Sprint, an endless runner: jump over
// ground blocks, duck under low-flying shadows, and run as far as possible.
package sprint

import (
	"fmt"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "shadowSprintHigh"

// ticksPerPoint converts running time to distance score.
const ticksPerPoint = 6

// duckTicks is how long one duck press keeps the runner low.
const duckTicks = 20

const (
	GroundChar = '▔'
	BlockChar  = '▓'
	ShadowChar = '≈'
	RunnerChar = '█'
)

// Game implements the sprint runner.
type Game struct {
	cfg  config.SprintConfig
	diff *config.DifficultyManager

	runner    core.Body
	grounded  bool
	duckTimer int
	obstacles *ObstacleManager
	groundY   int
	score     int
	best      int
	ticks     int
	gameOver  bool
	paused    bool
}

// New creates a game using the tuning found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.SprintConfig]("sprint"))
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.SprintConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("sprint", registry.CategoryRunner, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "sprint" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Shadow Sprint" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.groundY = cfg.ScreenH - g.cfg.Player.GroundOffset
	g.runner = core.Body{
		Pos:  core.Vec{X: float64(g.cfg.Player.X), Y: float64(g.groundY - g.cfg.Player.Height)},
		W:    float64(g.cfg.Player.Width),
		H:    float64(g.cfg.Player.Height),
		Kind: core.KindPlayer,
	}
	g.grounded = true
	g.duckTimer = 0
	g.obstacles = NewObstacleManager(cfg.Seed, cfg.ScreenW, g.groundY, &g.cfg, g.diff)
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

	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && g.grounded {
		g.runner.Vel.Y = g.cfg.Physics.JumpImpulse
		g.grounded = false
		g.duckTimer = 0
	}
	if in.Has(core.ActionDuck) || in.Has(core.ActionDown) {
		if g.grounded {
			g.duckTimer = duckTicks
		} else {
			// Fast fall
			g.runner.Vel.Y = max(g.runner.Vel.Y, g.cfg.Physics.MaxFallSpeed/2)
		}
	}
	if g.duckTimer > 0 {
		g.duckTimer--
	}

	g.applyPhysics()
	g.obstacles.Update(g.score, g.ticks)

	if g.ticks%ticksPerPoint == 0 {
		g.score++
	}

	if g.obstacles.Hits(g.hitbox()) {
		g.gameOver = true
		g.best = max(g.best, g.score)
	}

	return core.StepResult{State: g.State()}
}

// applyPhysics integrates the jump arc and lands the runner on the ground.
func (g *Game) applyPhysics() {
	if g.grounded {
		return
	}
	g.runner.Integrate(core.Vec{Y: g.cfg.Physics.Gravity})
	g.runner.Vel.Y = min(g.runner.Vel.Y, g.cfg.Physics.MaxFallSpeed)

	floor := float64(g.groundY) - g.runner.H
	if g.runner.Pos.Y >= floor {
		g.runner.Pos.Y = floor
		g.runner.Vel.Y = 0
		g.grounded = true
	}
}

// hitbox is the runner's collision box; ducking keeps only the bottom row.
func (g *Game) hitbox() core.Box {
	box := g.runner.Box()
	if g.ducking() {
		box.Top = box.Bottom - 1
	}
	return box
}

func (g *Game) ducking() bool {
	return g.grounded && g.duckTimer > 0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Pen(core.ColorGray)
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	for _, b := range g.obstacles.Bodies() {
		ch, color := BlockChar, core.ColorOrange
		if b.Kind == core.KindHazard {
			ch, color = ShadowChar, core.ColorMagenta
		}
		dst.Pen(color)
		dst.DrawRect(core.NewRect(int(b.Pos.X), int(b.Pos.Y), int(b.W), int(b.H)), ch)
	}

	dst.Pen(core.ColorBrightCyan)
	box := g.hitbox()
	dst.DrawRect(core.NewRect(int(box.Left), int(box.Top), int(box.Width()), int(box.Height())), RunnerChar)

	dst.Pen(core.ColorDefault)
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %05d  Best: %05d ", g.score, max(g.best, g.score)))

	switch {
	case g.gameOver:
		dst.DrawOverlay("CAUGHT BY THE SHADOWS", fmt.Sprintf("Distance: %d  |  Press R to restart", g.score))
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

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      int
	RunnerY   float64
	Grounded  bool
	Ducking   bool
	Score     int
	Obstacles int
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.ticks,
		RunnerY:   g.runner.Pos.Y,
		Grounded:  g.grounded,
		Ducking:   g.ducking(),
		Score:     g.score,
		Obstacles: len(g.obstacles.Bodies()),
		GameOver:  g.gameOver,
	}
}
