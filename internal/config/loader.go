package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Load reads the tuning file for a game.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func Load[T any](gameID, customPath string) (T, error) {
	var cfg T
	file := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(file), filepath.Join("configs", file)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fromDisk T
		if err := yaml.Unmarshal(data, &fromDisk); err == nil {
			return fromDisk, nil
		}
	}

	return Default[T](gameID)
}

// Default parses the embedded default tuning for a game.
func Default[T any](gameID string) (T, error) {
	var cfg T
	data, err := DefaultYAML(gameID)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse embedded %s: %w", gameID, err)
	}
	return cfg, nil
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) ([]byte, error) {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("config: no embedded defaults for %q: %w", gameID, err)
	}
	return data, nil
}

// mustDefault is used by the Default*Config helpers; the embedded files are
// covered by tests, so a failure here is a build defect.
func mustDefault[T any](gameID string) T {
	cfg, err := Default[T](gameID)
	if err != nil {
		panic(err)
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// DefaultFlappyConfig returns the embedded flappy tuning.
func DefaultFlappyConfig() FlappyConfig { return mustDefault[FlappyConfig]("flappy") }

// DefaultSprintConfig returns the embedded sprint tuning.
func DefaultSprintConfig() SprintConfig { return mustDefault[SprintConfig]("sprint") }

// DefaultTetrisConfig returns the embedded tetris tuning.
func DefaultTetrisConfig() TetrisConfig { return mustDefault[TetrisConfig]("tetris") }

// DefaultWhackConfig returns the embedded whack-a-mole tuning.
func DefaultWhackConfig() WhackConfig { return mustDefault[WhackConfig]("whack") }

// DefaultFishingConfig returns the embedded fishing tuning.
func DefaultFishingConfig() FishingConfig { return mustDefault[FishingConfig]("fishing") }

// DefaultQuizConfig returns the embedded question bank.
func DefaultQuizConfig() QuizConfig { return mustDefault[QuizConfig]("quiz") }

// DefaultTypingConfig returns the embedded typing passages.
func DefaultTypingConfig() TypingConfig { return mustDefault[TypingConfig]("typing") }

// LoadOrDefault loads a game's tuning and falls back to the embedded default
// when loading fails. Used by game factories, which cannot return errors.
func LoadOrDefault[T any](gameID string) T {
	cfg, err := Load[T](gameID, "")
	if err != nil {
		return mustDefault[T](gameID)
	}
	return cfg
}
