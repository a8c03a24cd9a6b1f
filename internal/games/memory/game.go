// Package memory is a Simon-style sequence game: watch the pads light up,
// then repeat the sequence. Each success appends one more step.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "memoryHighScore"

const (
	padCount      = 4
	flashSeconds  = 0.45
	gapSeconds    = 0.2
	scoreSeconds  = 0.8
	pressSeconds  = 0.15
	padW, padH    = 14, 5
)

// Phase is the Simon phase.
type Phase int

const (
	Showing Phase = iota // A pad is lit as part of the playback
	Gap                  // Dark pause between playback steps
	AwaitingInput
	Scoring // Brief success pause before the sequence grows
	Failed
)

var (
	padNames  = [padCount]string{"UP", "RIGHT", "DOWN", "LEFT"}
	padColors = [padCount]core.Color{core.ColorGreen, core.ColorRed, core.ColorYellow, core.ColorBlue}
	padLit    = [padCount]core.Color{core.ColorBrightGreen, core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightCyan}
)

// Game implements the memory sequence game.
type Game struct {
	rt    core.RuntimeConfig
	rng   *rand.Rand
	phase *core.Phases[Phase]

	sequence []int
	showIdx  int // Playback position while Showing/Gap
	inputIdx int // Next expected position while AwaitingInput
	pressed  int // Pad lit by the player's last press, -1 if none
	pressFor int // Ticks the pressed pad stays lit
	score    int
	best     int
	ticks    int
	paused   bool
}

// New creates a new memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", registry.CategoryQuiz, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memory" }

// Title returns the display name.
func (g *Game) Title() string { return "Simon Says" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// OneShotActions implements registry.OneShot: each arrow presses one pad.
func (g *Game) OneShotActions() []core.Action {
	return []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
}

// Reset starts a new game with a one-step sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.NewPhases(Gap)
	g.phase.On(Showing, Gap, cfg.Ticks(gapSeconds))
	g.phase.On(Gap, Showing, cfg.Ticks(flashSeconds))
	g.phase.On(Scoring, Gap, cfg.Ticks(gapSeconds))

	g.sequence = []int{g.rng.Intn(padCount)}
	g.startPlayback()
	g.inputIdx = 0
	g.pressed = -1
	g.pressFor = 0
	g.score = 0
	g.best = cfg.BestScore
	g.ticks = 0
	g.paused = false
}

// startPlayback begins with a dark gap so the first flash is visible.
func (g *Game) startPlayback() {
	g.showIdx = -1
	g.phase.Enter(Gap, g.rt.Ticks(gapSeconds)*2)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase.Current() }

// Sequence returns a copy of the sequence to repeat.
func (g *Game) Sequence() []int {
	return append([]int(nil), g.sequence...)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Is(Failed) {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	if g.pressFor > 0 {
		g.pressFor--
		if g.pressFor == 0 {
			g.pressed = -1
		}
	}

	if g.phase.Is(AwaitingInput) {
		if pad, ok := g.readPad(in); ok {
			g.press(pad)
		}
		return core.StepResult{State: g.State()}
	}

	expired, ok := g.phase.Tick()
	if !ok {
		return core.StepResult{State: g.State()}
	}
	switch expired {
	case Gap:
		g.showIdx++
		if g.showIdx >= len(g.sequence) {
			g.inputIdx = 0
			g.phase.Enter(AwaitingInput, 0)
		}
	case Scoring:
		g.sequence = append(g.sequence, g.rng.Intn(padCount))
		g.showIdx = -1
	}

	return core.StepResult{State: g.State()}
}

// readPad maps arrows, digits 1-4 and clicks to a pad.
func (g *Game) readPad(in core.InputFrame) (int, bool) {
	for i, a := range [padCount]core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
		if in.Has(a) {
			return i, true
		}
	}
	for _, ch := range in.Text {
		if i := int(ch - '1'); i >= 0 && i < padCount {
			return i, true
		}
	}
	for _, c := range in.Clicks {
		for i := 0; i < padCount; i++ {
			if g.padRect(i).Contains(c.X, c.Y) {
				return i, true
			}
		}
	}
	return 0, false
}

// press checks one pad against the sequence.
func (g *Game) press(pad int) {
	g.pressed = pad
	g.pressFor = g.rt.Ticks(pressSeconds)
	if pad != g.sequence[g.inputIdx] {
		g.phase.Enter(Failed, 0)
		g.best = max(g.best, g.score)
		return
	}
	g.inputIdx++
	if g.inputIdx == len(g.sequence) {
		g.score = len(g.sequence)
		g.phase.Enter(Scoring, g.rt.Ticks(scoreSeconds))
	}
}

// lit returns the pad currently lit, or -1.
func (g *Game) lit() int {
	if g.phase.Is(Showing) && g.showIdx >= 0 && g.showIdx < len(g.sequence) {
		return g.sequence[g.showIdx]
	}
	return g.pressed
}

// padRect lays the pads out as a diamond around the screen center.
func (g *Game) padRect(i int) core.Rect {
	cx, cy := g.rt.ScreenW/2, g.rt.ScreenH/2+1
	switch i {
	case 0:
		return core.NewRect(cx-padW/2, cy-padH*3/2, padW, padH)
	case 1:
		return core.NewRect(cx+padW/2+1, cy-padH/2, padW, padH)
	case 2:
		return core.NewRect(cx-padW/2, cy+padH/2+1, padW, padH)
	default:
		return core.NewRect(cx-padW*3/2-1, cy-padH/2, padW, padH)
	}
}

// Render draws the four pads.
func (g *Game) Render(dst *core.Screen) {
	status := "Watch..."
	switch g.phase.Current() {
	case AwaitingInput:
		status = fmt.Sprintf("Your turn: %d/%d", g.inputIdx, len(g.sequence))
	case Scoring:
		status = "Correct!"
	}
	dst.DrawText(1, 0, fmt.Sprintf("Simon  Length: %d  Score: %d  Best: %d  %s",
		len(g.sequence), g.score, max(g.best, g.score), status))

	lit := g.lit()
	for i := 0; i < padCount; i++ {
		r := g.padRect(i)
		if i == lit {
			dst.Pen(padLit[i])
			dst.DrawRect(r, '█')
		} else {
			dst.Pen(padColors[i])
			dst.DrawBox(r)
		}
		dst.DrawText(r.X+(r.W-len(padNames[i]))/2, r.Y+r.H/2, padNames[i])
	}
	dst.Pen(core.ColorDefault)

	switch {
	case g.phase.Is(Failed):
		dst.DrawOverlay("WRONG PAD", fmt.Sprintf("You remembered %d steps", g.score), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase.Is(Failed),
		Paused:   g.paused,
	}
}
