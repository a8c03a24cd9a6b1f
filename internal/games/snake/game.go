// Package snake implements classic Snake on a fixed, bounds-checked board.
// The board grid is the single source of truth for what occupies a cell;
// the body slice only remembers segment order.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "snakeHighScore"

const (
	maxBoardW    = 40
	maxBoardH    = 20
	hudHeight    = 2
	startTicks   = 8 // Ticks per move at the start
	minTicks     = 3 // Fastest speed
	speedUpEvery = 5 // Food eaten per speed-up
)

// Cell is the content of a board square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Body
	Food
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var dirDelta = map[Direction]core.Point{
	DirRight: {X: 1},
	DirDown:  {Y: 1},
	DirLeft:  {X: -1},
	DirUp:    {Y: -1},
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Game implements the Snake game.
type Game struct {
	rng   *rand.Rand
	board *core.Grid[Cell]

	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for the next move
	food      core.Point

	moveEvery  int
	moveTicker int
	tick       int
	score      int
	best       int
	gameOver   bool
	won        bool
	paused     bool
	tooSmall   bool
	offsetX    int
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", registry.CategoryPuzzle, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset builds a walled board sized to the screen and places the snake.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.best = cfg.BestScore
	g.gameOver = false
	g.won = false
	g.paused = false
	g.moveEvery = startTicks
	g.moveTicker = 0

	w := min(cfg.ScreenW, maxBoardW)
	h := min(cfg.ScreenH-hudHeight, maxBoardH)
	g.tooSmall = w < 10 || h < 6
	if g.tooSmall {
		g.board = core.NewGrid[Cell](0, 0)
		g.snake = nil
		return
	}
	g.offsetX = (cfg.ScreenW - w) / 2

	g.board = core.NewGrid[Cell](w, h)
	for x := 0; x < w; x++ {
		_ = g.board.Set(x, 0, Wall)
		_ = g.board.Set(x, h-1, Wall)
	}
	for y := 0; y < h; y++ {
		_ = g.board.Set(0, y, Wall)
		_ = g.board.Set(w-1, y, Wall)
	}

	startY := h / 2
	startX := w / 4
	g.snake = []core.Point{{X: startX + 2, Y: startY}, {X: startX + 1, Y: startY}, {X: startX, Y: startY}}
	for _, p := range g.snake {
		_ = g.board.Set(p.X, p.Y, Body)
	}
	g.direction = DirRight
	g.nextDir = DirRight

	g.spawnFood()
}

// spawnFood places food on a random empty cell. A full board is a win.
func (g *Game) spawnFood() {
	var empty []core.Point
	g.board.Each(func(x, y int, c Cell) {
		if c == Empty {
			empty = append(empty, core.Point{X: x, Y: y})
		}
	})
	if len(empty) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.won = true
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
	_ = g.board.Set(g.food.X, g.food.Y, Food)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.won || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.steer(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// steer buffers a direction change; reversing onto the neck is ignored.
func (g *Game) steer(in core.InputFrame) {
	want := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	}
	if want != g.direction.Opposite() {
		g.nextDir = want
	}
}

// move advances the snake one cell and resolves what it ran into.
func (g *Game) move() {
	g.direction = g.nextDir
	head := g.snake[0].Add(dirDelta[g.direction])
	tail := g.snake[len(g.snake)-1]

	target, ok := g.board.Get(head.X, head.Y)
	if !ok || target == Wall || (target == Body && head != tail) {
		g.gameOver = true
		g.best = max(g.best, g.score)
		return
	}

	ate := target == Food
	if !ate {
		_ = g.board.Set(tail.X, tail.Y, Empty)
		g.snake = g.snake[:len(g.snake)-1]
	}
	g.snake = append([]core.Point{head}, g.snake...)
	_ = g.board.Set(head.X, head.Y, Body)

	if ate {
		g.score++
		if g.score%speedUpEvery == 0 {
			g.moveEvery = max(g.moveEvery-1, minTicks)
		}
		g.spawnFood()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Snake  Score: %d  Best: %d  Length: %d", g.score, max(g.best, g.score), len(g.snake)))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	g.board.Each(func(x, y int, c Cell) {
		sx, sy := g.offsetX+x, hudHeight+y
		switch c {
		case Wall:
			dst.SetColor(sx, sy, '#', core.ColorGray)
		case Body:
			dst.SetColor(sx, sy, 'o', core.ColorGreen)
		case Food:
			dst.SetColor(sx, sy, '*', core.ColorBrightRed)
		}
	})
	if len(g.snake) > 0 {
		head := g.snake[0]
		dst.SetColor(g.offsetX+head.X, hudHeight+head.Y, 'O', core.ColorBrightGreen)
	}

	switch {
	case g.won:
		dst.DrawOverlay("BOARD FULL, YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
		Won:      g.won,
	}
}

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      int
	Score     int
	Length    int
	Head      core.Point
	Food      core.Point
	Dir       Direction
	MoveEvery int
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Length:    len(g.snake),
		Food:      g.food,
		Dir:       g.direction,
		MoveEvery: g.moveEvery,
		GameOver:  g.gameOver,
	}
	if len(g.snake) > 0 {
		s.Head = g.snake[0]
	}
	return s
}
