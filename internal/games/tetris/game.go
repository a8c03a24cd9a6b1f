// Package tetris implements a falling-block puzzle on a fixed board.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "tetrisHighScore"

const (
	softDropPoints = 1
	hardDropPoints = 2
	levelSpeedup   = 4 // Fall ticks removed per level
)

var kindColors = [kindCount]core.Color{
	I: core.ColorBrightCyan,
	O: core.ColorYellow,
	T: core.ColorMagenta,
	S: core.ColorGreen,
	Z: core.ColorRed,
	J: core.ColorBlue,
	L: core.ColorOrange,
}

// Game implements the falling-block game.
type Game struct {
	cfg config.TetrisConfig
	rng *rand.Rand

	board *core.Grid[int8] // 0 = empty, otherwise Kind+1
	piece Piece
	next  Kind
	bag   []Kind

	fallTimer int
	ticks     int
	score     int
	best      int
	lines     int
	level     int
	gameOver  bool
	paused    bool
}

// New creates a game using the tuning found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.TetrisConfig]("tetris"))
}

// NewWithConfig creates a game with explicit tuning.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("tetris", registry.CategoryPuzzle, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// Reset clears the board and deals the first piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = core.NewGrid[int8](g.cfg.Board.Width, g.cfg.Board.Height)
	g.bag = nil
	g.fallTimer = 0
	g.ticks = 0
	g.score = 0
	g.best = cfg.BestScore
	g.lines = 0
	g.level = 0
	g.gameOver = false
	g.paused = false

	g.next = g.draw()
	g.spawn()
}

// draw takes the next kind from a shuffled bag of all seven.
func (g *Game) draw() Kind {
	if len(g.bag) == 0 {
		g.bag = []Kind{I, O, T, S, Z, J, L}
		core.Shuffle(g.rng, g.bag)
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// spawn puts the next piece at the top; a blocked spawn ends the game.
func (g *Game) spawn() {
	g.piece = Piece{Kind: g.next, X: (g.board.Width() - 4) / 2}
	g.next = g.draw()
	g.fallTimer = 0
	if !g.fits(g.piece) {
		g.gameOver = true
		g.best = max(g.best, g.score)
	}
}

// fits reports whether p lies inside the board on empty cells.
func (g *Game) fits(p Piece) bool {
	for _, c := range p.Cells() {
		v, ok := g.board.Get(c[0], c[1])
		if !ok || v != 0 {
			return false
		}
	}
	return true
}

func (g *Game) fallTicks() int {
	return max(g.cfg.FallTicks-g.level*levelSpeedup, g.cfg.MinFallTicks, 1)
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

	switch {
	case in.Has(core.ActionLeft):
		g.try(g.piece.Moved(-1, 0))
	case in.Has(core.ActionRight):
		g.try(g.piece.Moved(1, 0))
	case in.Has(core.ActionUp):
		g.try(g.piece.Rotated())
	}

	if in.Has(core.ActionJump) {
		g.hardDrop()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionDown) || in.Has(core.ActionDuck) {
		if g.try(g.piece.Moved(0, 1)) {
			g.score += softDropPoints
			g.fallTimer = 0
		}
	}

	g.fallTimer++
	if g.fallTimer >= g.fallTicks() {
		g.fallTimer = 0
		if !g.try(g.piece.Moved(0, 1)) {
			g.lock()
		}
	}

	return core.StepResult{State: g.State()}
}

// try replaces the active piece with p when it fits.
func (g *Game) try(p Piece) bool {
	if !g.fits(p) {
		return false
	}
	g.piece = p
	return true
}

func (g *Game) hardDrop() {
	for g.try(g.piece.Moved(0, 1)) {
		g.score += hardDropPoints
	}
	g.lock()
}

// lock writes the piece into the board, clears full rows and spawns the next piece.
func (g *Game) lock() {
	for _, c := range g.piece.Cells() {
		_ = g.board.Set(c[0], c[1], int8(g.piece.Kind)+1)
	}
	if n := g.clearLines(); n > 0 {
		idx := min(n, len(g.cfg.LineScores)) - 1
		if idx >= 0 {
			g.score += g.cfg.LineScores[idx] * (g.level + 1)
		}
		g.lines += n
		if g.cfg.LinesPerLevel > 0 {
			g.level = g.lines / g.cfg.LinesPerLevel
		}
	}
	g.spawn()
}

// clearLines removes every full row, shifts the rows above down and pushes
// empty rows in at the top. It returns the number of rows removed.
func (g *Game) clearLines() int {
	w, h := g.board.Width(), g.board.Height()
	kept := make([][]int8, 0, h)
	for y := 0; y < h; y++ {
		row := g.board.Row(y)
		full := true
		for _, v := range row {
			if v == 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	cleared := h - len(kept)
	if cleared == 0 {
		return 0
	}
	rows := make([][]int8, cleared, h)
	for i := range rows {
		rows[i] = make([]int8, w)
	}
	rows = append(rows, kept...)
	for y, row := range rows {
		for x, v := range row {
			_ = g.board.Set(x, y, v)
		}
	}
	return cleared
}

// ghost returns where the piece would land.
func (g *Game) ghost() Piece {
	p := g.piece
	for g.fits(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// Render draws the well, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	w, h := g.board.Width(), g.board.Height()
	left := max((dst.Width()-(w*2+2)-16)/2, 0)
	top := max((dst.Height()-(h+2))/2, 0)

	dst.Pen(core.ColorGray)
	dst.DrawBox(core.NewRect(left, top, w*2+2, h+2))

	cell := func(x, y int, color core.Color, glyph string) {
		sx, sy := left+1+x*2, top+1+y
		dst.Pen(color)
		dst.DrawText(sx, sy, glyph)
	}

	g.board.Each(func(x, y int, v int8) {
		if v == 0 {
			cell(x, y, core.ColorGray, " .")
			return
		}
		cell(x, y, kindColors[v-1], "[]")
	})
	if !g.gameOver {
		for _, c := range g.ghost().Cells() {
			cell(c[0], c[1], core.ColorGray, "::")
		}
		for _, c := range g.piece.Cells() {
			cell(c[0], c[1], kindColors[g.piece.Kind], "[]")
		}
	}

	px := left + w*2 + 4
	dst.Pen(core.ColorDefault)
	dst.DrawText(px, top+1, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(px, top+2, fmt.Sprintf("Best:  %d", max(g.best, g.score)))
	dst.DrawText(px, top+3, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(px, top+4, fmt.Sprintf("Level: %d", g.level))
	dst.DrawText(px, top+6, "Next:")
	for _, idx := range shapes[g.next][0] {
		dst.SetColor(px+(idx%4)*2, top+7+idx/4, '[', kindColors[g.next])
		dst.SetColor(px+(idx%4)*2+1, top+7+idx/4, ']', kindColors[g.next])
	}

	switch {
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  Lines: %d", g.score, g.lines), "Press R to restart")
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
	Score    int
	Lines    int
	Level    int
	Piece    Piece
	Next     Kind
	Filled   int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Piece:    g.piece,
		Next:     g.next,
		Filled:   g.board.Count(func(v int8) bool { return v != 0 }),
		GameOver: g.gameOver,
	}
}
