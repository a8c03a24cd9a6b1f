// Package typing is a timed typing test over a random passage.
package typing

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// HighScoreKey is the persisted best-score key.
const HighScoreKey = "typingHighScore"

const wrapWidth = 60

// Game implements the typing test.
type Game struct {
	cfg config.TypingConfig
	rt  core.RuntimeConfig

	passage  []rune
	typed    []rune
	strokes  int // Characters entered, including ones later erased
	started  bool
	elapsed  int // Ticks since the first keystroke
	stats    Stats
	finished bool
	best     int
	paused   bool
}

// New creates a typing test using passages found on disk or the embedded default.
func New() *Game {
	return NewWithConfig(config.LoadOrDefault[config.TypingConfig]("typing"))
}

// NewWithConfig creates a typing test with explicit passages.
func NewWithConfig(cfg config.TypingConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("typing", registry.CategoryTyping, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "typing" }

// Title returns the display name.
func (g *Game) Title() string { return "Typing Test" }

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string { return HighScoreKey }

// WantsText implements registry.TextInput until the test finishes.
func (g *Game) WantsText() bool { return !g.finished && !g.paused }

// Reset picks a passage and clears the attempt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.passage = nil
	if len(g.cfg.Passages) > 0 {
		g.passage = []rune(g.cfg.Passages[rng.Intn(len(g.cfg.Passages))])
	}
	g.typed = g.typed[:0]
	g.strokes = 0
	g.started = false
	g.elapsed = 0
	g.stats = Stats{}
	g.finished = len(g.passage) == 0
	g.best = cfg.BestScore
	g.paused = false
}

// correct counts typed characters that match the passage.
func (g *Game) correct() int {
	n := 0
	for i, r := range g.typed {
		if i < len(g.passage) && r == g.passage[i] {
			n++
		}
	}
	return n
}

// Step advances the game by one tick. The clock starts on the first keystroke.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.finished {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, r := range in.Text {
		if len(g.typed) >= len(g.passage) {
			break
		}
		g.typed = append(g.typed, r)
		g.strokes++
		g.started = true
	}
	if in.Has(core.ActionBack) && len(g.typed) > 0 {
		g.typed = g.typed[:len(g.typed)-1]
	}

	if g.started {
		g.elapsed++
	}
	if len(g.typed) == len(g.passage) || g.elapsed >= g.rt.Ticks(g.cfg.Seconds) {
		g.finish()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) finish() {
	g.finished = true
	secs := float64(g.elapsed) / float64(g.rt.Ticks(1))
	if stats, err := Measure(g.correct(), g.strokes, secs); err == nil {
		g.stats = stats
	}
	g.best = max(g.best, g.stats.Score())
}

// lines wraps the passage at word boundaries and returns start offsets.
func (g *Game) lines() [][2]int {
	var out [][2]int
	start, lastSpace := 0, -1
	for i, r := range g.passage {
		if r == ' ' {
			lastSpace = i
		}
		if i-start >= wrapWidth && lastSpace > start {
			out = append(out, [2]int{start, lastSpace + 1})
			start = lastSpace + 1
		}
	}
	return append(out, [2]int{start, len(g.passage)})
}

// Render draws the passage with typed characters coloured by correctness.
func (g *Game) Render(dst *core.Screen) {
	rate := g.rt.Ticks(1)
	left := g.rt.Ticks(g.cfg.Seconds) - g.elapsed
	dst.DrawText(1, 0, fmt.Sprintf("Typing Test  Time: %ds  Progress: %d/%d  Best: %d",
		max(left, 0)/rate, len(g.typed), len(g.passage), g.best))

	x0 := max((dst.Width()-wrapWidth)/2, 0)
	for row, span := range g.lines() {
		for i := span[0]; i < span[1]; i++ {
			color := core.ColorGray
			if i < len(g.typed) {
				color = core.ColorBrightGreen
				if g.typed[i] != g.passage[i] {
					color = core.ColorBrightRed
				}
			} else if i == len(g.typed) {
				color = core.ColorBrightWhite
			}
			r := g.passage[i]
			if i < len(g.typed) && g.typed[i] != r && r == ' ' {
				r = '_'
			}
			dst.SetColor(x0+i-span[0], 3+row*2, r, color)
		}
	}

	if g.finished {
		dst.DrawOverlay("FINISHED",
			fmt.Sprintf("%.0f WPM  |  %.0f%% accuracy", g.stats.WPM, g.stats.Accuracy*100),
			fmt.Sprintf("Score: %d  |  Press R to restart", g.stats.Score()))
	} else if g.paused {
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score(),
		GameOver: g.finished,
		Paused:   g.paused,
	}
}
