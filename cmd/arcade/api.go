package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/httpapi"
	"github.com/vovakirdan/minigames/internal/storage"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve leaderboards as read-only JSON",
	Long: `Start an HTTP server exposing the game catalogue and stored scores.

Routes:
  GET /healthz
  GET /api/games
  GET /api/games/:id/scores?limit=N
  GET /api/runs/:runID
  GET /api/highscores/:key

Examples:
  arcade api
  arcade api --http :9090`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (default from ARCADE_HTTP_ADDR)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("arcade-api", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	router := httpapi.NewRouter(httpapi.Config{
		Addr:        firstNonEmpty(flagHTTPAddr, env.HTTPAddr),
		BaseURL:     "/api",
		Mode:        env.GinMode,
		Controllers: []httpapi.Controller{httpapi.NewScoresController(store)},
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return router.Run(ctx)
}
