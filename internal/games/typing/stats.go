package typing

import (
	"fmt"

	"github.com/vovakirdan/minigames/internal/core"
)

// Stats summarises a typing attempt.
type Stats struct {
	Correct  int     // Characters matching the passage
	Typed    int     // Keystrokes that produced a character
	Seconds  float64 // Time spent typing
	WPM      float64 // Correct characters per minute, five characters per word
	Accuracy float64 // Correct / typed in [0, 1]
}

// Measure computes WPM and accuracy. Zero elapsed time or zero keystrokes
// is rejected rather than producing Inf or NaN.
func Measure(correct, typed int, seconds float64) (Stats, error) {
	s := Stats{Correct: correct, Typed: typed, Seconds: seconds}
	if correct < 0 || typed < 0 || correct > typed {
		return s, fmt.Errorf("typing: %d correct of %d typed: %w", correct, typed, core.ErrInvalidInput)
	}
	minutes, err := core.Ratio(seconds, 60)
	if err != nil {
		return s, err
	}
	if s.WPM, err = core.Ratio(float64(correct)/5, minutes); err != nil {
		return s, err
	}
	if s.Accuracy, err = core.Ratio(float64(correct), float64(typed)); err != nil {
		return s, err
	}
	return s, nil
}

// Score folds speed and accuracy into a single integer.
func (s Stats) Score() int {
	return int(s.WPM*s.Accuracy + 0.5)
}
