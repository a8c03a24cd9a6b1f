package sprint

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSprintConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newTestGame(99), newTestGame(99)
	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestJumpArcLandsOnGround(t *testing.T) {
	g := newTestGame(1)
	groundTop := g.runner.Pos.Y

	g.Step(press(core.ActionJump))
	if g.grounded || g.runner.Pos.Y >= groundTop {
		t.Fatalf("runner should be airborne after jumping, y=%f", g.runner.Pos.Y)
	}

	// A second jump in mid-air is ignored
	vy := g.runner.Vel.Y
	g.Step(press(core.ActionJump))
	if g.runner.Vel.Y < vy {
		t.Error("double jump should not re-apply the impulse")
	}

	for i := 0; i < 200 && !g.grounded; i++ {
		g.obstacles.bodies = nil
		g.Step(core.NewInputFrame())
	}
	if !g.grounded || g.runner.Pos.Y != groundTop {
		t.Errorf("runner should land back at %f, got %f", groundTop, g.runner.Pos.Y)
	}
}

func TestBlockCollisionEndsRun(t *testing.T) {
	g := newTestGame(1)
	box := g.runner.Box()
	g.obstacles.bodies = []core.Body{{
		Pos:  core.Vec{X: box.Right + 0.1, Y: float64(g.groundY - 2)},
		W:    2,
		H:    2,
		Kind: core.KindObstacle,
	}}
	g.obstacles.nextSpawnX = 1000

	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Error("running into a block should end the run")
	}
}

func TestDuckingPassesUnderShadow(t *testing.T) {
	g := newTestGame(1)
	box := g.runner.Box()
	shadow := core.Body{
		Pos:  core.Vec{X: box.Right + 0.1, Y: box.Top},
		W:    3,
		H:    1,
		Kind: core.KindHazard,
	}
	g.obstacles.nextSpawnX = 1000

	g.obstacles.bodies = []core.Body{shadow}
	g.Step(press(core.ActionDuck))
	if g.State().GameOver {
		t.Fatal("ducking runner should pass under the shadow")
	}

	g2 := newTestGame(1)
	g2.obstacles.nextSpawnX = 1000
	g2.obstacles.bodies = []core.Body{shadow}
	g2.Step(core.NewInputFrame())
	if !g2.State().GameOver {
		t.Error("standing runner should be hit by the shadow")
	}
}

func TestDistanceScoring(t *testing.T) {
	g := newTestGame(1)
	g.obstacles.nextSpawnX = 1e9
	for i := 0; i < ticksPerPoint*10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
}

func TestHighScoreKey(t *testing.T) {
	if New().HighScoreKey() != "shadowSprintHigh" {
		t.Error("wrong high score key")
	}
}
