package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/registry"
	"github.com/vovakirdan/minigames/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top scores for the specified game.

Examples:
  arcade scores snake
  arcade scores tetris --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'arcade list' to see available games", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %10s  %s\n", "Rank", "Player", "Score", "When")
	fmt.Fprintf(out, "  %-4s  %-12s  %10s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %10s  %s\n",
			i+1, e.Player, humanize.Comma(int64(e.Score)), humanize.Time(e.CreatedAt))
	}

	if stats, err := store.GameStats(gameID); err == nil && stats != nil {
		fmt.Fprintf(out, "\n%s runs, average %.1f\n", humanize.Comma(int64(stats.GamesCount)), stats.AvgScore)
	}
	if key := registry.HighScoreKey(game); key != "" {
		if best, err := store.HighScore(key); err == nil {
			fmt.Fprintf(out, "Best: %s\n", humanize.Comma(int64(best)))
		}
	}
	return nil
}
