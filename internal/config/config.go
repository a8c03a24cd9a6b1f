// Package config provides YAML-based game tuning, difficulty management and
// process settings for the arcade.
package config

import "fmt"

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters shared by the runner games.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// RunnerPlayer defines the player hitbox.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// SprintConfig contains all configuration for the sprint runner.
type SprintConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  SprintObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SprintObstacles defines ground obstacle parameters.
type SprintObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// TetrisConfig contains gravity and scoring for the falling-block game.
type TetrisConfig struct {
	Board struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"board"`
	FallTicks     int   `yaml:"fall_ticks"`      // Ticks per row at level 0
	MinFallTicks  int   `yaml:"min_fall_ticks"`  // Fastest gravity
	LinesPerLevel int   `yaml:"lines_per_level"` // Cleared lines needed to level up
	LineScores    []int `yaml:"line_scores"`     // Points for 1..4 lines, multiplied by level+1
}

// WhackConfig contains timing for the whack-a-mole game.
type WhackConfig struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	RoundSeconds    float64 `yaml:"round_seconds"`
	SpawnSeconds    float64 `yaml:"spawn_seconds"`
	MinSpawnSeconds float64 `yaml:"min_spawn_seconds"`
	SpawnShrink     float64 `yaml:"spawn_shrink"`
	UpSeconds       float64 `yaml:"up_seconds"`
	HitPoints       int     `yaml:"hit_points"`
	MissPenalty     int     `yaml:"miss_penalty"`
}

// FishingConfig contains hook and fish parameters.
type FishingConfig struct {
	RoundSeconds float64 `yaml:"round_seconds"`
	Hook         struct {
		Radius    float64 `yaml:"radius"`
		DropSpeed float64 `yaml:"drop_speed"`
		ReelSpeed float64 `yaml:"reel_speed"`
		MoveSpeed float64 `yaml:"move_speed"`
	} `yaml:"hook"`
	Fish struct {
		SpawnSeconds float64 `yaml:"spawn_seconds"`
		MinSpeed     float64 `yaml:"min_speed"`
		MaxSpeed     float64 `yaml:"max_speed"`
		Radius       float64 `yaml:"radius"`
		JunkChance   float64 `yaml:"junk_chance"`
		Points       int     `yaml:"points"`
		JunkPenalty  int     `yaml:"junk_penalty"`
	} `yaml:"fish"`
}

// Question is one multiple-choice entry in the quiz bank.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Answer  string   `yaml:"answer"`
	Decoys  []string `yaml:"decoys"`
	Comment string   `yaml:"comment,omitempty"`
}

// QuizConfig contains the question bank and round settings.
type QuizConfig struct {
	PerRound        int        `yaml:"per_round"`
	FeedbackSeconds float64    `yaml:"feedback_seconds"`
	Questions       []Question `yaml:"questions"`
}

// TypingConfig contains the passages for the typing test.
type TypingConfig struct {
	Seconds  float64  `yaml:"seconds"`
	Passages []string `yaml:"passages"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset rewrites a difficulty section for a named preset.
// The fixed preset turns progression off.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}

// ParsePreset validates a preset name. An empty name is allowed and means
// "keep the file's settings".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}
