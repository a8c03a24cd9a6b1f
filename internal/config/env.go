package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds process-level settings. Flags override these; these override
// the built-in defaults.
type Env struct {
	DBPath   string // ARCADE_DB
	FPS      int    // ARCADE_FPS
	LogLevel string // ARCADE_LOG_LEVEL
	SSHAddr  string // ARCADE_SSH_ADDR
	HTTPAddr string // ARCADE_HTTP_ADDR
	HostKey  string // ARCADE_HOST_KEY
	GinMode  string // GIN_MODE
}

// DefaultEnv returns settings used when nothing is configured.
func DefaultEnv() Env {
	return Env{
		DBPath:   filepath.Join("~", ".arcade", "scores.db"),
		FPS:      60,
		LogLevel: "info",
		SSHAddr:  ":2222",
		HTTPAddr: ":8080",
		HostKey:  filepath.Join(".ssh", "arcade_ed25519"),
		GinMode:  "release",
	}
}

// LoadEnv reads .env files (default ".env") into the process environment
// without overriding variables that are already set, then builds Env.
// Missing files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	env := DefaultEnv()
	env.DBPath = getEnvWithDefault("ARCADE_DB", env.DBPath)
	env.LogLevel = getEnvWithDefault("ARCADE_LOG_LEVEL", env.LogLevel)
	env.SSHAddr = getEnvWithDefault("ARCADE_SSH_ADDR", env.SSHAddr)
	env.HTTPAddr = getEnvWithDefault("ARCADE_HTTP_ADDR", env.HTTPAddr)
	env.HostKey = getEnvWithDefault("ARCADE_HOST_KEY", env.HostKey)
	env.GinMode = getEnvWithDefault("GIN_MODE", env.GinMode)

	fps, err := getEnvAsInt("ARCADE_FPS", env.FPS)
	if err != nil {
		return Env{}, err
	}
	if fps < 1 || fps > 240 {
		return Env{}, fmt.Errorf("config: ARCADE_FPS=%d out of range 1..240", fps)
	}
	env.FPS = fps

	return env, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return v, nil
}
