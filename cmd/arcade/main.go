// arcade is a terminal arcade of small, self-contained games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade serve             - Start SSH server for remote play
//	arcade api               - Start the read-only leaderboard API
//	arcade sim <game>        - Run a game headless and print the last frame
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60, env ARCADE_FPS)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (env ARCADE_DB)
//	--log-level <lvl>   - debug, info, warn or error (env ARCADE_LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/minigames/internal/games/fishing"
	_ "github.com/vovakirdan/minigames/internal/games/flappy"
	_ "github.com/vovakirdan/minigames/internal/games/kingdom"
	_ "github.com/vovakirdan/minigames/internal/games/life"
	_ "github.com/vovakirdan/minigames/internal/games/maze"
	_ "github.com/vovakirdan/minigames/internal/games/memory"
	_ "github.com/vovakirdan/minigames/internal/games/quiz"
	_ "github.com/vovakirdan/minigames/internal/games/slide"
	_ "github.com/vovakirdan/minigames/internal/games/snake"
	_ "github.com/vovakirdan/minigames/internal/games/sprint"
	_ "github.com/vovakirdan/minigames/internal/games/target"
	_ "github.com/vovakirdan/minigames/internal/games/tetris"
	_ "github.com/vovakirdan/minigames/internal/games/typing"
	_ "github.com/vovakirdan/minigames/internal/games/whack"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// env holds settings from the environment and .env, loaded before any command runs.
	env config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - small games in your terminal",
	Long: `Arcade is a collection of small terminal games: runners, puzzles,
quizzes, typing tests and toys. Play locally, over SSH, or browse the
leaderboards through a JSON API.

Examples:
  arcade list
  arcade play snake
  arcade menu
  arcade serve --ssh :2222
  arcade api --http :8080
  arcade scores tetris
  arcade sim life --frames 600`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(simCmd)
}

// loadSettings reads .env and the environment. Flags given on the command
// line win over both.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var err error
	env, err = config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if flagFPS < 1 || flagFPS > 240 {
		return fmt.Errorf("--fps %d out of range 1..240", flagFPS)
	}
	return nil
}
