package snake

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// stepMoves runs enough ticks for n moves.
func stepMoves(g *Game, n int) {
	for i := 0; i < n*g.moveEvery; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newTestGame(12345), newTestGame(12345)
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		switch i {
		case 20:
			in.Set(core.ActionDown)
		case 60:
			in.Set(core.ActionLeft)
		case 100:
			in.Set(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	g.Step(press(core.ActionLeft))
	if g.nextDir == DirLeft {
		t.Error("should not allow reversing from right to left")
	}

	g.Step(press(core.ActionDown))
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %v, expected down", g.nextDir)
	}
}

func TestFoodSpawnsOnEmptyCell(t *testing.T) {
	g := newTestGame(999)
	for i := 0; i < 100; i++ {
		_ = g.board.Set(g.food.X, g.food.Y, Empty)
		g.spawnFood()
		if !g.board.InBounds(g.food.X, g.food.Y) {
			t.Fatalf("food out of bounds at %+v", g.food)
		}
		for _, seg := range g.snake {
			if seg == g.food {
				t.Fatalf("food spawned on snake at %+v", g.food)
			}
		}
		if g.food.X == 0 || g.food.Y == 0 || g.food.X == g.board.Width()-1 || g.food.Y == g.board.Height()-1 {
			t.Fatalf("food spawned on wall at %+v", g.food)
		}
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newTestGame(1)
	head := g.snake[0]
	_ = g.board.Set(g.food.X, g.food.Y, Empty)
	g.food = core.Point{X: head.X + 1, Y: head.Y}
	_ = g.board.Set(g.food.X, g.food.Y, Food)

	stepMoves(g, 1)

	if g.score != 1 || len(g.snake) != 4 {
		t.Errorf("after eating: score=%d length=%d, expected 1 and 4", g.score, len(g.snake))
	}
	if g.board.Count(func(c Cell) bool { return c == Body }) != len(g.snake) {
		t.Error("board and body slice disagree")
	}
	if g.board.Count(func(c Cell) bool { return c == Food }) != 1 {
		t.Error("exactly one food should be on the board")
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(7)
	_ = g.board.Set(g.food.X, g.food.Y, Empty)
	g.food = core.Point{X: -1, Y: -1}
	stepMoves(g, g.board.Width())
	if !g.State().GameOver {
		t.Error("running right forever should hit the wall")
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(3)
	// A long snake coiled so that turning down-left-up bites the body.
	y := g.snake[0].Y
	x := g.snake[0].X
	for _, p := range g.snake {
		_ = g.board.Set(p.X, p.Y, Empty)
	}
	g.snake = []core.Point{{X: x, Y: y}, {X: x - 1, Y: y}, {X: x - 2, Y: y}, {X: x - 3, Y: y}, {X: x - 4, Y: y}, {X: x - 5, Y: y}}
	for _, p := range g.snake {
		_ = g.board.Set(p.X, p.Y, Body)
	}

	g.Step(press(core.ActionDown))
	stepMoves(g, 1)
	g.Step(press(core.ActionLeft))
	stepMoves(g, 1)
	g.Step(press(core.ActionUp))
	stepMoves(g, 1)

	if !g.State().GameOver {
		t.Errorf("snake should bite itself, snapshot %+v", g.Snapshot())
	}
}

func TestMovingIntoVacatingTailIsAllowed(t *testing.T) {
	g := newTestGame(3)
	x, y := g.snake[0].X, g.snake[0].Y
	for _, p := range g.snake {
		_ = g.board.Set(p.X, p.Y, Empty)
	}
	// 2x2 loop: head moves into the cell the tail leaves this move
	g.snake = []core.Point{{X: x, Y: y}, {X: x, Y: y + 1}, {X: x + 1, Y: y + 1}, {X: x + 1, Y: y}}
	for _, p := range g.snake {
		_ = g.board.Set(p.X, p.Y, Body)
	}
	g.direction, g.nextDir = DirRight, DirRight

	stepMoves(g, 1)
	if g.State().GameOver {
		t.Error("following the tail should not count as a collision")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 8, ScreenH: 6})
	g.Step(press(core.ActionRight))
	if g.State().GameOver {
		t.Error("tiny screen pauses instead of ending the game")
	}
	s := core.NewScreen(8, 6)
	g.Render(s)
}
