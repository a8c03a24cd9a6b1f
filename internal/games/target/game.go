// Package target is a numbers round: combine the given numbers with
// + - * / to hit the target. Expressions are evaluated left to right.
package target

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "targetHighScore"

const (
	rounds          = 5
	roundSeconds    = 60.0
	feedbackSeconds = 2.0
	maxInput        = 48
)

var (
	largeNumbers = []int{25, 50, 75, 100}

	// ErrNotAvailable reports an operand that is not among the round's numbers.
	ErrNotAvailable = errors.New("number not available")
)

// Phase is the round phase.
type Phase int

const (
	Solving Phase = iota
	Feedback
	Done
)

// Game implements the numbers round.
type Game struct {
	rt    core.RuntimeConfig
	rng   *rand.Rand
	phase *core.Phases[Phase]

	numbers  []int
	target   int
	input    []rune
	message  string
	round    int
	timeLeft int
	score    int
	best     int
	ticks    int
	paused   bool
}

// New creates a new numbers game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("target", registry.CategoryQuiz, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "target" }

// Title returns the display name.
func (g *Game) Title() string { return "Number Target" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// WantsText implements registry.TextInput while an answer is being typed.
func (g *Game) WantsText() bool { return g.phase != nil && g.phase.Is(Solving) && !g.paused }

// Reset starts a new game at round one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.NewPhases(Solving)
	g.phase.On(Feedback, Solving, 0)
	g.round = 0
	g.score = 0
	g.best = cfg.BestScore
	g.ticks = 0
	g.paused = false
	g.deal()
}

// deal picks two large and four small numbers and a target in 101..999.
func (g *Game) deal() {
	large := core.Shuffled(g.rng, largeNumbers)[:2]
	g.numbers = append([]int(nil), large...)
	for i := 0; i < 4; i++ {
		g.numbers = append(g.numbers, 1+g.rng.Intn(10))
	}
	g.target = 101 + g.rng.Intn(899)
	g.input = g.input[:0]
	g.message = ""
	g.timeLeft = g.rt.Ticks(roundSeconds)
}

// Numbers returns the round's numbers.
func (g *Game) Numbers() []int { return append([]int(nil), g.numbers...) }

// Target returns the number to hit.
func (g *Game) Target() int { return g.target }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Is(Done) {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	switch g.phase.Current() {
	case Solving:
		for _, r := range in.Text {
			if len(g.input) < maxInput {
				g.input = append(g.input, r)
			}
		}
		if in.Has(core.ActionBack) && len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
		if in.Has(core.ActionConfirm) {
			g.submit()
			break
		}
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.message = fmt.Sprintf("Time's up! Target was %d.", g.target)
			g.phase.Enter(Feedback, g.rt.Ticks(feedbackSeconds))
		}
	case Feedback:
		if expired, ok := g.phase.Tick(); ok && expired == Feedback {
			g.nextRound()
		}
	}

	return core.StepResult{State: g.State()}
}

// Points scores a result by its distance from the target.
func Points(result decimal.Decimal, target int) int {
	if !result.IsInteger() {
		return 0
	}
	off := result.Sub(decimal.NewFromInt(int64(target))).Abs()
	switch {
	case off.IsZero():
		return 10
	case off.LessThanOrEqual(decimal.NewFromInt(5)):
		return 7
	case off.LessThanOrEqual(decimal.NewFromInt(10)):
		return 5
	}
	return 0
}

// submit evaluates the typed expression. Syntax errors keep the round open.
func (g *Game) submit() {
	acc, result, err := Evaluate(string(g.input))
	if err == nil {
		err = g.checkOperands(acc.Numbers())
	}
	if err != nil {
		g.message = "Invalid: " + strings.TrimPrefix(err.Error(), "target: ")
		return
	}

	pts := Points(result, g.target)
	g.score += pts
	g.message = fmt.Sprintf("%s = %s, target %d: +%d", string(g.input), result.String(), g.target, pts)
	g.phase.Enter(Feedback, g.rt.Ticks(feedbackSeconds))
}

// checkOperands verifies each operand is one of the round's numbers, each
// used at most once.
func (g *Game) checkOperands(ops []decimal.Decimal) error {
	left := map[int]int{}
	for _, n := range g.numbers {
		left[n]++
	}
	for _, d := range ops {
		if !d.IsInteger() {
			return fmt.Errorf("target: %s: %w", d, ErrNotAvailable)
		}
		n := int(d.IntPart())
		if left[n] == 0 {
			return fmt.Errorf("target: %d: %w", n, ErrNotAvailable)
		}
		left[n]--
	}
	return nil
}

func (g *Game) nextRound() {
	g.round++
	if g.round >= rounds {
		g.phase.Enter(Done, 0)
		g.best = max(g.best, g.score)
		return
	}
	g.deal()
}

// Render draws the numbers, target and the typed expression.
func (g *Game) Render(dst *core.Screen) {
	rate := g.rt.Ticks(1)
	dst.DrawText(1, 0, fmt.Sprintf("Number Target  Round %d/%d  Score: %d  Best: %d",
		min(g.round+1, rounds), rounds, g.score, max(g.best, g.score)))

	if g.phase.Is(Done) {
		dst.DrawOverlay("ALL ROUNDS PLAYED", fmt.Sprintf("Score: %d", g.score), "Press R to play again")
		return
	}

	dst.Pen(core.ColorBrightYellow)
	dst.DrawTextCentered(3, fmt.Sprintf("TARGET  %d", g.target))
	dst.Pen(core.ColorBrightWhite)
	parts := make([]string, len(g.numbers))
	for i, n := range g.numbers {
		parts[i] = fmt.Sprintf("[%d]", n)
	}
	dst.DrawTextCentered(5, strings.Join(parts, " "))
	dst.Pen(core.ColorDefault)

	dst.DrawText(4, 8, "> "+string(g.input)+"_")
	dst.DrawText(4, 10, g.message)
	dst.DrawText(4, 12, fmt.Sprintf("Time: %ds   Evaluated left to right: 5 + 10 * 2 = 30", (g.timeLeft+rate-1)/rate))

	if g.paused {
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase.Is(Done),
		Paused:   g.paused,
	}
}
