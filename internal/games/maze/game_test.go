package maze

import (
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// pathTo walks the BFS distances back from the exit.
func pathTo(m *Maze) []core.Point {
	dist := m.Distances()
	path := []core.Point{m.Exit}
	for cur := m.Exit; cur != m.Start; {
		for _, d := range core.Orthogonal {
			prev := cur.Add(d)
			if n, ok := dist[prev]; ok && n == dist[cur]-1 {
				cur = prev
				break
			}
		}
		path = append([]core.Point{cur}, path...)
	}
	return path
}

func actionFor(from, to core.Point) core.Action {
	switch to.Add(core.Point{X: -from.X, Y: -from.Y}) {
	case core.Orthogonal[0]:
		return core.ActionUp
	case core.Orthogonal[1]:
		return core.ActionRight
	case core.Orthogonal[2]:
		return core.ActionDown
	default:
		return core.ActionLeft
	}
}

func TestWallsBlockThePlayer(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionUp)) // (1,0) is the border
	if g.player != g.maze.Start {
		t.Errorf("player moved into a wall: %+v", g.player)
	}
}

func TestSolvingLoadsBiggerMaze(t *testing.T) {
	g := newTestGame(2)
	firstW := g.maze.Grid.Width()
	path := pathTo(g.maze)
	for i := 1; i < len(path); i++ {
		g.Step(press(actionFor(path[i-1], path[i])))
	}

	if g.solved != 1 {
		t.Fatalf("solved = %d, expected 1", g.solved)
	}
	if g.score < solvePoints {
		t.Errorf("score = %d, expected at least %d", g.score, solvePoints)
	}
	if g.maze.Grid.Width() <= firstW {
		t.Error("next maze should be wider")
	}
	if g.player != g.maze.Start {
		t.Error("player should start the new maze at the start")
	}
}

func TestTimerEndsRun(t *testing.T) {
	g := newTestGame(3)
	for i := 0; i < g.rt.Ticks(roundSeconds); i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Error("run should end when the timer reaches zero")
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newTestGame(11), newTestGame(11)
	actions := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}
	for i := 0; i < 500; i++ {
		in := press(actions[(i/7)%4])
		g1.Step(in)
		g2.Step(in)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(4)
	s := core.NewScreen(80, 24)
	g.Render(s)
	found := false
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == '@' {
				found = true
			}
		}
	}
	if !found {
		t.Error("player glyph not rendered")
	}
}
