package config

import "github.com/vovakirdan/minigames/internal/core"

// Floors that keep runner levels playable at maximum difficulty.
const (
	minGap     = 4
	minSpacing = 15
)

// DifficultyManager turns score or elapsed ticks into a level in [0, 1]
// and scales runner parameters by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var driver int
	switch d.cfg.Progression.Type {
	case "score":
		driver = score
	case "time":
		driver = ticks
	default:
		return d.initialLevel
	}

	progress, err := core.Ratio(float64(driver), float64(d.cfg.Progression.MaxAt))
	if err != nil {
		// max_at of zero means "already at max"
		progress = 1
	}
	progress = core.ClampF(progress, 0, 1)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base speed from 1x up to (1 + speed_multiplier)x.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks a gap by up to gap_reduction cells.
func (d *DifficultyManager) GapSize(base, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.GapReduction))
	return max(base-reduction, minGap)
}

// Spacing shrinks obstacle spacing by up to spacing_reduction cells.
func (d *DifficultyManager) Spacing(base, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.SpacingReduction))
	return max(base-reduction, minSpacing)
}
