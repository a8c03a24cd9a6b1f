package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Games are grouped by kind. Use arrow keys or j/k to navigate, Enter to
play, Tab for the scoreboard. Esc inside a game returns to the menu.

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("menu", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.RunSession(runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})
}
