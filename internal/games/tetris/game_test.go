package tetris

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestShapeTables(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		for r := 0; r < 4; r++ {
			seen := map[int]bool{}
			for _, idx := range shapes[k][r] {
				if idx < 0 || idx > 15 {
					t.Errorf("%v rot %d: index %d outside the 4x4 box", k, r, idx)
				}
				if seen[idx] {
					t.Errorf("%v rot %d: duplicate index %d", k, r, idx)
				}
				seen[idx] = true
			}
		}
	}
}

func TestFourRotationsReturnToStart(t *testing.T) {
	p := Piece{Kind: T, X: 3, Y: 2}
	q := p.Rotated().Rotated().Rotated().Rotated()
	if q != p {
		t.Errorf("four rotations = %+v, expected %+v", q, p)
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newTestGame(7), newTestGame(7)
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		switch i % 50 {
		case 5:
			in.Set(core.ActionLeft)
		case 15:
			in.Set(core.ActionUp)
		case 30:
			in.Set(core.ActionJump)
		}
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 20; i++ {
		g.Step(press(core.ActionLeft))
	}
	for _, c := range g.piece.Cells() {
		if c[0] < 0 {
			t.Fatalf("piece left the board: %+v", g.piece.Cells())
		}
	}
	if g.fits(g.piece.Moved(-1, 0)) {
		t.Error("piece should be flush against the left wall")
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := newTestGame(3)
	first := g.piece.Kind
	next := g.next

	g.Step(press(core.ActionJump))

	snap := g.Snapshot()
	if snap.Filled != 4 {
		t.Errorf("Filled = %d, expected 4 locked cells", snap.Filled)
	}
	if snap.Score == 0 {
		t.Error("hard drop should award points per row")
	}
	if g.piece.Kind != next {
		t.Errorf("spawned %v, expected queued %v (first was %v)", g.piece.Kind, next, first)
	}
}

func TestLineClearShiftsRowsDown(t *testing.T) {
	g := newTestGame(5)
	w, h := g.board.Width(), g.board.Height()
	// Bottom row full except column 0, with a marker block above it.
	for x := 1; x < w; x++ {
		_ = g.board.Set(x, h-1, int8(O)+1)
	}
	_ = g.board.Set(5, h-2, int8(T)+1)
	// Vertical I in column 0 fills the gap.
	g.piece = Piece{Kind: I, Rot: 3, X: -1, Y: h - 4}
	g.lock()

	if g.lines != 1 {
		t.Fatalf("lines = %d, expected 1", g.lines)
	}
	if g.score != g.cfg.LineScores[0] {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.LineScores[0])
	}
	if got := g.board.At(5, h-1); got != int8(T)+1 {
		t.Errorf("marker should fall to the bottom row, got %d", got)
	}
	for y := h - 3; y < h; y++ {
		if g.board.At(0, y) == 0 {
			t.Errorf("remaining I cells should shift down, (0,%d) empty", y)
		}
	}
}

func TestFourLineClearUsesTopScore(t *testing.T) {
	g := newTestGame(5)
	w, h := g.board.Width(), g.board.Height()
	for y := h - 4; y < h; y++ {
		for x := 1; x < w; x++ {
			_ = g.board.Set(x, y, int8(J)+1)
		}
	}
	g.piece = Piece{Kind: I, Rot: 3, X: -1, Y: h - 4}
	g.lock()

	if g.lines != 4 {
		t.Fatalf("lines = %d, expected 4", g.lines)
	}
	if g.score != g.cfg.LineScores[3] {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.LineScores[3])
	}
	if g.Snapshot().Filled != 0 {
		t.Error("board should be empty after clearing every filled row")
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := newTestGame(9)
	for x := 0; x < g.board.Width(); x++ {
		_ = g.board.Set(x, 1, int8(S)+1)
		_ = g.board.Set(x, 2, int8(S)+1)
	}
	g.spawn()
	if !g.State().GameOver {
		t.Error("a piece that cannot spawn should end the game")
	}
	before := g.Snapshot()
	g.Step(press(core.ActionJump))
	if g.Snapshot() != before {
		t.Error("game over is terminal until Reset")
	}
}

func TestRenderDoesNotPanicOnSmallScreen(t *testing.T) {
	g := newTestGame(2)
	g.Render(core.NewScreen(20, 10))
	g.Render(core.NewScreen(80, 24))
}
