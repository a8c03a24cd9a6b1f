// Package httpapi serves a read-only JSON view of the arcade's catalogue
// and leaderboards.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Config holds settings for a Router.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Prefix for API routes
	Mode        string // gin mode: release, debug or test
	Controllers []Controller
	Logger      *log.Logger
}

// Router owns the gin engine and the HTTP server.
type Router struct {
	addr   string
	engine *gin.Engine
	logger *log.Logger
}

// NewRouter builds the engine and registers every controller under
// BaseURL. /healthz is always served at the root.
func NewRouter(cfg Config) *Router {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(cfg.Logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group(cfg.BaseURL)
	for _, c := range cfg.Controllers {
		c.Register(api)
	}

	return &Router{addr: cfg.Addr, engine: engine, logger: cfg.Logger}
}

// Handler exposes the engine, mainly for tests.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run serves until ctx is cancelled, then shuts the server down.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting HTTP server", "address", r.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpapi: %w", err)
	case <-ctx.Done():
	}

	r.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through the charm logger.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
