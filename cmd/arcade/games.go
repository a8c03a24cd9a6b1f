package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/games/fishing"
	"github.com/vovakirdan/minigames/internal/games/flappy"
	"github.com/vovakirdan/minigames/internal/games/quiz"
	"github.com/vovakirdan/minigames/internal/games/sprint"
	"github.com/vovakirdan/minigames/internal/games/tetris"
	"github.com/vovakirdan/minigames/internal/games/typing"
	"github.com/vovakirdan/minigames/internal/games/whack"
	"github.com/vovakirdan/minigames/internal/registry"
)

// newGame creates a game, applying a custom tuning file and difficulty
// preset when given. Games without tuning reject --config.
func newGame(id, configPath, difficulty string) (registry.Game, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	if configPath == "" && preset == "" {
		return registry.Create(id)
	}

	switch id {
	case "flappy":
		cfg, err := config.Load[config.FlappyConfig](id, configPath)
		if err != nil {
			return nil, err
		}
		if preset != "" {
			config.ApplyPreset(&cfg.Difficulty, preset)
		}
		return flappy.NewWithConfig(cfg), nil
	case "sprint":
		cfg, err := config.Load[config.SprintConfig](id, configPath)
		if err != nil {
			return nil, err
		}
		if preset != "" {
			config.ApplyPreset(&cfg.Difficulty, preset)
		}
		return sprint.NewWithConfig(cfg), nil
	}

	if preset != "" {
		return nil, fmt.Errorf("game %q has no difficulty presets", id)
	}
	switch id {
	case "tetris":
		return load(id, configPath, tetris.NewWithConfig)
	case "whack":
		return load(id, configPath, whack.NewWithConfig)
	case "fishing":
		return load(id, configPath, fishing.NewWithConfig)
	case "quiz":
		return load(id, configPath, quiz.NewWithConfig)
	case "typing":
		return load(id, configPath, typing.NewWithConfig)
	}
	if !registry.Exists(id) {
		return registry.Create(id)
	}
	return nil, fmt.Errorf("game %q has no tuning file", id)
}

func load[T any, G registry.Game](id, path string, build func(T) G) (registry.Game, error) {
	cfg, err := config.Load[T](id, path)
	if err != nil {
		return nil, err
	}
	return build(cfg), nil
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
