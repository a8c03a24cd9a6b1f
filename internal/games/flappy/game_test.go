package flappy

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func jumpEvery(n, ticks int) []core.InputFrame {
	frames := make([]core.InputFrame, ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		if i%n == 0 {
			frames[i].Set(core.ActionJump)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	g1, g2 := newTestGame(12345), newTestGame(12345)
	for _, in := range jumpEvery(12, 400) {
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)
	for _, in := range jumpEvery(10, 50) {
		g.Step(in)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})

	snap := g.Snapshot()
	if snap.Score != 0 || snap.GameOver || snap.Tick != 0 || snap.Pipes != 0 {
		t.Errorf("Reset should clear state, got %+v", snap)
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
}

func TestGameJumpMovesUp(t *testing.T) {
	g := newTestGame(1)
	startY := g.bird.Pos.Y

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if g.bird.Pos.Y >= startY {
		t.Errorf("jump should move the bird up, was %f now %f", startY, g.bird.Pos.Y)
	}
}

func TestGameFallingEndsGame(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("bird that never flaps should hit the ground")
	}

	// Game over is sticky until the platform resets
	before := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)
	if g.Snapshot() != before {
		t.Error("steps after game over must not change state")
	}
}

func TestPipeEdgeContactIsNotCollision(t *testing.T) {
	g := newTestGame(1)
	width := g.cfg.Obstacles.PipeWidth
	bird := g.bird.Box()

	g.pipes.pipes = []Pipe{{X: bird.Right, GapY: 20, GapHeight: 2}}
	if g.pipes.Hits(bird) {
		t.Error("pipe touching the bird's right edge should not collide")
	}

	g.pipes.pipes = []Pipe{{X: bird.Right - 0.5, GapY: 20, GapHeight: 2}}
	if !g.pipes.Hits(bird) {
		t.Error("pipe overlapping the bird by half a cell should collide")
	}

	g.pipes.pipes = []Pipe{{X: bird.Left - float64(width), GapY: 0, GapHeight: 2}}
	if g.pipes.Hits(bird) {
		t.Error("pipe ending exactly at the bird's left edge should not collide")
	}
}

func TestPassingPipeScores(t *testing.T) {
	g := newTestGame(1)
	// Pipe just left of the bird, with the bird well inside its gap row range
	g.pipes.pipes = []Pipe{{X: 4, GapY: 5, GapHeight: 15}}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	res = g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("a pipe scores once, got %d", res.State.Score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot() != before {
		t.Error("paused game should not advance")
	}
	if !g.State().Paused {
		t.Error("State should report paused")
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	g := newTestGame(3)
	for _, in := range jumpEvery(12, 60) {
		g.Step(in)
	}
	before := g.Snapshot()

	s1 := core.NewScreen(80, 24)
	g.Render(s1)
	s2 := core.NewScreen(80, 24)
	g.Render(s2)

	if g.Snapshot() != before {
		t.Error("Render changed game state")
	}
	if s1.String() != s2.String() {
		t.Error("rendering unchanged state twice should match")
	}
}

func TestRegisteredWithHighScoreKey(t *testing.T) {
	g, err := registry.Create("flappy")
	if err != nil {
		t.Fatal(err)
	}
	if registry.HighScoreKey(g) != "flappyHighScore" {
		t.Errorf("HighScoreKey = %q", registry.HighScoreKey(g))
	}
}
