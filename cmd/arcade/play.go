package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Primary action (jump, flap, cast, tap)
  Enter        - Confirm
  Backspace    - Erase typed text
  P            - Pause
  R            - Restart (after game over)
  :            - Console (games with editable state)
  Esc/Q        - Quit

Difficulty options (flappy, sprint):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play flappy --difficulty hard
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := newGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return fmt.Errorf("%w\nRun 'arcade list' to see available games", err)
	}

	logger, closer, err := newLogger("play", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})
}

// playerName is the local user's name, used for the scoreboard.
func playerName() string {
	for _, k := range []string{"ARCADE_PLAYER", "USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "local"
}
