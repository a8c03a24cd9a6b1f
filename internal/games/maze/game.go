// Package maze implements a timed maze crawl. Each solved maze is followed
// by a bigger one until the clock runs out.
package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "mazeHighScore"

const (
	roundSeconds = 90.0
	solvePoints  = 100
	coinPoints   = 10
	coinsPerMaze = 3
	startRoomsW  = 6
	startRoomsH  = 4
	hudHeight    = 1
)

// Game implements the maze crawl.
type Game struct {
	rng *rand.Rand
	rt  core.RuntimeConfig

	maze     *Maze
	player   core.Point
	solved   int
	timeLeft int // Ticks
	ticks    int
	score    int
	best     int
	gameOver bool
	paused   bool
	err      error
}

// New creates a new maze game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", registry.CategoryPuzzle, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "maze" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Run" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset starts a fresh run with the first maze.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.solved = 0
	g.timeLeft = cfg.Ticks(roundSeconds)
	g.ticks = 0
	g.score = 0
	g.best = cfg.BestScore
	g.gameOver = false
	g.paused = false
	g.err = nil
	g.nextMaze()
}

// roomsFor grows the maze with each solve but keeps it on screen.
func (g *Game) roomsFor(solved int) (int, int) {
	maxW := max((g.rt.ScreenW-1)/2, 1)
	maxH := max((g.rt.ScreenH-hudHeight-1)/2, 1)
	return min(startRoomsW+solved*2, maxW), min(startRoomsH+solved, maxH)
}

func (g *Game) nextMaze() {
	w, h := g.roomsFor(g.solved)
	m, err := Generate(g.rng, w, h)
	if err != nil {
		g.err = err
		g.gameOver = true
		return
	}
	m.PlaceCoins(g.rng, coinsPerMaze)
	g.maze = m
	g.player = m.Start
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
	if next := g.player.Add(d); d != (core.Point{}) && g.maze.Passable(next) {
		g.player = next
		if g.maze.Grid.At(next.X, next.Y) == Coin {
			_ = g.maze.Grid.Set(next.X, next.Y, Open)
			g.score += coinPoints
		}
	}

	if g.player == g.maze.Exit {
		g.score += solvePoints + g.timeLeft/g.rt.Ticks(1)
		g.solved++
		g.nextMaze()
	}

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.gameOver = true
		g.best = max(g.best, g.score)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the maze with the player and exit.
func (g *Game) Render(dst *core.Screen) {
	rate := g.rt.Ticks(1)
	dst.DrawText(1, 0, fmt.Sprintf("Maze %d  Score: %d  Best: %d  Time: %ds",
		g.solved+1, g.score, max(g.best, g.score), (g.timeLeft+rate-1)/rate))

	if g.err != nil {
		dst.DrawOverlay("Window too small", g.err.Error())
		return
	}

	ox := max((dst.Width()-g.maze.Grid.Width())/2, 0)
	g.maze.Grid.Each(func(x, y int, v Tile) {
		switch v {
		case Wall:
			dst.SetColor(ox+x, hudHeight+y, '█', core.ColorBlue)
		case Coin:
			dst.SetColor(ox+x, hudHeight+y, '$', core.ColorYellow)
		}
	})
	dst.SetColor(ox+g.maze.Exit.X, hudHeight+g.maze.Exit.Y, 'E', core.ColorBrightGreen)
	dst.SetColor(ox+g.player.X, hudHeight+g.player.Y, '@', core.ColorBrightYellow)

	switch {
	case g.gameOver:
		dst.DrawOverlay("TIME'S UP", fmt.Sprintf("Mazes: %d  Score: %d", g.solved, g.score), "Press R to restart")
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
	Tick     int
	Player   core.Point
	Solved   int
	TimeLeft int
	Score    int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		Player:   g.player,
		Solved:   g.solved,
		TimeLeft: g.timeLeft,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
