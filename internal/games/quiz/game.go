// Package quiz is a multiple-choice trivia round drawn from a YAML bank.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "quizHighScore"

// defaultFeedbackSeconds is used when the bank sets no feedback pause.
const defaultFeedbackSeconds = 1.5

const (
	correctPoints = 10
	streakBonus   = 5 // Extra points per answer in a streak beyond the first
	optionsTop    = 6 // Screen row of the first option
)

// Phase is the quiz phase.
type Phase int

const (
	Asking Phase = iota
	Feedback
	Done
)

// Round is one question with its options in display order.
type Round struct {
	Prompt  string
	Options []string
	Answer  int // Index into Options
	Comment string
}

// Game implements the trivia quiz.
type Game struct {
	cfg   config.QuizConfig
	rt    core.RuntimeConfig
	rng   *rand.Rand
	phase *core.Phases[Phase]

	rounds   []Round
	current  int
	selected int
	picked   int // Option chosen for the current question, -1 if none
	correct  int
	streak   int
	score    int
	best     int
	ticks    int
	paused   bool
}

// New creates a quiz using the question bank found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.QuizConfig]("quiz"))
}

// NewWithConfig creates a quiz with an explicit bank.
// A missing or non-positive feedback_seconds falls back to the default pause.
func NewWithConfig(cfg config.QuizConfig) *Game {
	if cfg.FeedbackSeconds <= 0 {
		cfg.FeedbackSeconds = defaultFeedbackSeconds
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("quiz", registry.CategoryQuiz, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "quiz" }

// Title returns the display name.
func (g *Game) Title() string { return "Trivia Quiz" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// OneShotActions implements registry.OneShot.
func (g *Game) OneShotActions() []core.Action {
	return []core.Action{core.ActionUp, core.ActionDown}
}

// Reset draws a fresh round of questions with shuffled options.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.NewPhases(Asking)
	g.phase.On(Feedback, Asking, 0)

	bank := core.Shuffled(g.rng, g.cfg.Questions)
	n := len(bank)
	if g.cfg.PerRound > 0 {
		n = min(n, g.cfg.PerRound)
	}
	g.rounds = make([]Round, 0, n)
	for _, q := range bank[:n] {
		g.rounds = append(g.rounds, g.deal(q))
	}

	g.current = 0
	g.selected = 0
	g.picked = -1
	g.correct = 0
	g.streak = 0
	g.score = 0
	g.best = cfg.BestScore
	g.ticks = 0
	g.paused = false
	if len(g.rounds) == 0 {
		g.phase.Enter(Done, 0)
	}
}

// deal shuffles the answer in among the decoys.
func (g *Game) deal(q config.Question) Round {
	opts := append([]string{q.Answer}, q.Decoys...)
	order := make([]int, len(opts))
	for i := range order {
		order[i] = i
	}
	core.Shuffle(g.rng, order)

	r := Round{Prompt: q.Prompt, Comment: q.Comment, Options: make([]string, len(opts))}
	for pos, src := range order {
		r.Options[pos] = opts[src]
		if src == 0 {
			r.Answer = pos
		}
	}
	return r
}

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
	case Asking:
		g.ask(in)
	case Feedback:
		if expired, ok := g.phase.Tick(); ok && expired == Feedback {
			g.advance()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) ask(in core.InputFrame) {
	r := g.rounds[g.current]
	switch {
	case in.Has(core.ActionUp):
		g.selected = (g.selected + len(r.Options) - 1) % len(r.Options)
	case in.Has(core.ActionDown):
		g.selected = (g.selected + 1) % len(r.Options)
	}

	choice := -1
	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		choice = g.selected
	}
	for _, ch := range in.Text {
		if i := int(ch - '1'); i >= 0 && i < len(r.Options) {
			choice = i
		}
	}
	for _, c := range in.Clicks {
		if i := c.Y - optionsTop; i >= 0 && i < len(r.Options) {
			choice = i
		}
	}
	if choice >= 0 {
		g.answer(choice)
	}
}

// answer scores a choice and shows feedback.
func (g *Game) answer(choice int) {
	g.picked = choice
	if choice == g.rounds[g.current].Answer {
		g.correct++
		g.score += correctPoints + g.streak*streakBonus
		g.streak++
	} else {
		g.streak = 0
	}
	g.phase.Enter(Feedback, max(g.rt.Ticks(g.cfg.FeedbackSeconds), 1))
}

// advance moves to the next question or finishes the round.
func (g *Game) advance() {
	g.current++
	g.selected = 0
	g.picked = -1
	if g.current >= len(g.rounds) {
		g.phase.Enter(Done, 0)
		g.best = max(g.best, g.score)
	}
}

// Render draws the question, options and feedback.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Trivia  Question %d/%d  Score: %d  Streak: %d",
		min(g.current+1, len(g.rounds)), len(g.rounds), g.score, g.streak))

	if g.phase.Is(Done) {
		dst.DrawOverlay("ROUND COMPLETE",
			fmt.Sprintf("%d of %d correct  |  Score: %d", g.correct, len(g.rounds), g.score),
			"Press R to play again")
		return
	}

	r := g.rounds[g.current]
	dst.Pen(core.ColorBrightWhite)
	dst.DrawText(2, 3, r.Prompt)
	for i, opt := range r.Options {
		color, marker := core.ColorDefault, "  "
		if i == g.selected && g.phase.Is(Asking) {
			color, marker = core.ColorBrightCyan, "> "
		}
		if g.phase.Is(Feedback) {
			switch {
			case i == r.Answer:
				color = core.ColorBrightGreen
			case i == g.picked:
				color = core.ColorBrightRed
			}
		}
		dst.Pen(color)
		dst.DrawText(2, optionsTop+i, fmt.Sprintf("%s%d. %s", marker, i+1, opt))
	}
	dst.Pen(core.ColorDefault)

	if g.phase.Is(Feedback) {
		msg := "Wrong!"
		if g.picked == r.Answer {
			msg = "Correct!"
		}
		if r.Comment != "" {
			msg += "  " + r.Comment
		}
		dst.DrawText(2, optionsTop+len(r.Options)+1, msg)
	} else {
		dst.DrawText(2, optionsTop+len(r.Options)+1, "Up/Down + Enter, or press 1-4")
	}

	if g.paused {
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	done := g.phase.Is(Done)
	return core.GameState{
		Score:    g.score,
		GameOver: done,
		Paused:   g.paused,
		Won:      done && len(g.rounds) > 0 && g.correct == len(g.rounds),
	}
}
