package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

func init() {
	registry.Register("counter", registry.CategoryToy, func() registry.Game { return &counterGame{} })
}

// counterGame scores one point per Jump and ends at limit.
type counterGame struct {
	cfg    core.RuntimeConfig
	score  int
	limit  int
	steps  int
	resets int
	last   core.InputFrame
	over   bool
}

func (g *counterGame) ID() string           { return "counter" }
func (g *counterGame) Title() string        { return "Counter" }
func (g *counterGame) HighScoreKey() string { return "counterHighScore" }

func (g *counterGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0
	g.steps = 0
	g.over = false
	g.resets++
}

func (g *counterGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if in.Has(core.ActionJump) {
		g.score++
	}
	if g.limit > 0 && g.score >= g.limit {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *counterGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf("score %d", g.score))
}

func (g *counterGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *counterGame) Inspect() []registry.Field {
	return []registry.Field{{Name: "score", Value: strconv.Itoa(g.score)}}
}

func (g *counterGame) Poke(name, value string) error {
	if name != "score" {
		return fmt.Errorf("no field %q: %w", name, core.ErrInvalidInput)
	}
	n, err := core.ParseInt(value)
	if err != nil {
		return err
	}
	g.score = n
	return nil
}
