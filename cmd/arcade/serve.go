package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/platform/tui"
	"github.com/vovakirdan/minigames/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Sessions share nothing but the leaderboard.

Examples:
  arcade serve                           # Listen on ARCADE_SSH_ADDR (default :2222)
  arcade serve --ssh :2323               # Listen on port 2323
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from ARCADE_SSH_ADDR)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("arcade-ssh", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = firstNonEmpty(flagSSHAddr, env.SSHAddr, cfg.Address)
	cfg.HostKeyPath = firstNonEmpty(flagHostKey, env.HostKey, cfg.HostKeyPath)
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
