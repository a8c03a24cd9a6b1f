// Package fishing drops a hook from a boat to catch fish swimming past.
// Junk floats among the fish and costs points when reeled in.
package fishing

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "fishingHighScore"

const surfaceY = 3.0

// HookState is what the line is doing.
type HookState int

const (
	Idle HookState = iota
	Dropping
	Reeling
)

// Game implements the fishing game.
type Game struct {
	cfg config.FishingConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	hook     core.Body
	state    HookState
	catch    *core.Body
	fish     []core.Body
	spawner  *core.Spawner
	seabed   float64
	timeLeft int
	caught   int
	junk     int
	score    int
	best     int
	ticks    int
	gameOver bool
	paused   bool
}

// New creates a game using the tuning found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.FishingConfig]("fishing"))
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.FishingConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("fishing", registry.CategoryToy, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "fishing" }

// Title returns the display name.
func (g *Game) Title() string { return "Gone Fishing" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset clears the pond and restarts the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.hook = core.Body{
		Pos:  core.Vec{X: float64(cfg.ScreenW) / 2, Y: surfaceY},
		R:    g.cfg.Hook.Radius,
		Kind: core.KindPlayer,
	}
	g.state = Idle
	g.catch = nil
	g.fish = g.fish[:0]
	spawn := cfg.Ticks(g.cfg.Fish.SpawnSeconds)
	g.spawner = core.NewSpawner(spawn, spawn, 1)
	g.seabed = float64(cfg.ScreenH - 1)
	g.timeLeft = cfg.Ticks(g.cfg.RoundSeconds)
	g.caught = 0
	g.junk = 0
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

	g.steer(in)
	g.moveHook()
	g.moveFish()
	if g.spawner.Tick() {
		g.spawnFish()
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.gameOver = true
		g.best = max(g.best, g.score)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) steer(in core.InputFrame) {
	switch g.state {
	case Idle:
		if in.Has(core.ActionLeft) {
			g.hook.Pos.X -= g.cfg.Hook.MoveSpeed
		}
		if in.Has(core.ActionRight) {
			g.hook.Pos.X += g.cfg.Hook.MoveSpeed
		}
		g.hook.Pos.X = core.ClampF(g.hook.Pos.X, 1, float64(g.rt.ScreenW-2))
		if in.Has(core.ActionJump) || in.Has(core.ActionDown) || in.Has(core.ActionDuck) {
			g.state = Dropping
		}
	case Dropping:
		if in.Has(core.ActionUp) {
			g.state = Reeling
		}
	}
}

// moveHook drops or reels the hook and resolves catches.
func (g *Game) moveHook() {
	switch g.state {
	case Dropping:
		g.hook.Vel = core.Vec{Y: g.cfg.Hook.DropSpeed}
		g.hook.Integrate(core.Vec{})
		if g.hook.Pos.Y >= g.seabed {
			g.hook.Pos.Y = g.seabed
			g.state = Reeling
			return
		}
		for i := range g.fish {
			if g.fish[i].Circle().Touches(g.hook.Circle()) {
				hooked := g.fish[i]
				g.catch = &hooked
				g.fish[i].Dead = true
				g.state = Reeling
				break
			}
		}
	case Reeling:
		g.hook.Vel = core.Vec{Y: -g.cfg.Hook.ReelSpeed}
		g.hook.Integrate(core.Vec{})
		if g.hook.Pos.Y <= surfaceY {
			g.hook.Pos.Y = surfaceY
			g.land()
			g.state = Idle
		}
	}
	g.hook.Vel = core.Vec{}
}

// land scores whatever came up on the line.
func (g *Game) land() {
	if g.catch == nil {
		return
	}
	switch g.catch.Kind {
	case core.KindHazard:
		g.junk++
		g.score = max(g.score-g.cfg.Fish.JunkPenalty, 0)
	default:
		g.caught++
		g.score += g.cfg.Fish.Points
	}
	g.catch = nil
}

func (g *Game) moveFish() {
	w := float64(g.rt.ScreenW)
	for i := range g.fish {
		f := &g.fish[i]
		f.Integrate(core.Vec{})
		if f.Pos.X < -2 || f.Pos.X > w+2 {
			f.Dead = true
		}
	}
	g.fish = core.Sweep(g.fish)
}

// spawnFish releases a fish or a piece of junk from one side of the pond.
func (g *Game) spawnFish() {
	depth := g.seabed - surfaceY - 3
	if depth <= 0 {
		return
	}
	speed := g.cfg.Fish.MinSpeed + g.rng.Float64()*(g.cfg.Fish.MaxSpeed-g.cfg.Fish.MinSpeed)
	x := -1.0
	if g.rng.Intn(2) == 0 {
		x = float64(g.rt.ScreenW)
		speed = -speed
	}
	kind := core.KindPickup
	if g.rng.Float64() < g.cfg.Fish.JunkChance {
		kind = core.KindHazard
		speed /= 2
	}
	g.fish = append(g.fish, core.Body{
		Pos:  core.Vec{X: x, Y: surfaceY + 2 + g.rng.Float64()*depth},
		Vel:  core.Vec{X: speed},
		R:    g.cfg.Fish.Radius,
		Kind: kind,
	})
}

// Render draws the boat, line, fish and junk.
func (g *Game) Render(dst *core.Screen) {
	rate := g.rt.Ticks(1)
	dst.DrawText(1, 0, fmt.Sprintf("Gone Fishing  Score: %d  Best: %d  Fish: %d  Junk: %d  Time: %ds",
		g.score, max(g.best, g.score), g.caught, g.junk, (g.timeLeft+rate-1)/rate))

	dst.Pen(core.ColorBlue)
	dst.DrawHLine(0, int(surfaceY), dst.Width(), '~')
	dst.Pen(core.ColorOrange)
	dst.DrawHLine(0, int(g.seabed), dst.Width(), '▒')

	hx := int(g.hook.Pos.X)
	dst.Pen(core.ColorBrightWhite)
	dst.DrawText(hx-2, int(surfaceY)-1, `\___/`)
	dst.Pen(core.ColorGray)
	dst.DrawVLine(hx, int(surfaceY), int(g.hook.Pos.Y)-int(surfaceY), '|')

	for _, f := range g.fish {
		glyph, color := "><>", core.ColorBrightCyan
		if f.Vel.X < 0 {
			glyph = "<><"
		}
		if f.Kind == core.KindHazard {
			glyph, color = "[#]", core.ColorGray
		}
		dst.Pen(color)
		dst.DrawText(int(f.Pos.X)-1, int(f.Pos.Y), glyph)
	}
	dst.SetColor(hx, int(g.hook.Pos.Y), 'J', core.ColorBrightYellow)
	if g.catch != nil {
		glyph := '%'
		if g.catch.Kind == core.KindHazard {
			glyph = '#'
		}
		dst.SetColor(hx, int(g.hook.Pos.Y)+1, glyph, core.ColorBrightGreen)
	}
	dst.Pen(core.ColorDefault)

	switch {
	case g.gameOver:
		dst.DrawOverlay("TIME'S UP", fmt.Sprintf("Fish: %d  Junk: %d", g.caught, g.junk),
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
