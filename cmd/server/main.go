package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/vinyl/internal/config"
	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
	"github.com/JonMunkholm/vinyl/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"source", config.MaskSource(cfg.Catalog.Source),
		"covers_dir", cfg.Covers.Dir,
		"remote_covers", cfg.Covers.BaseURL != "",
		"default_view", cfg.View.DefaultView,
		"session_ttl", cfg.Session.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Check the source once so misconfiguration shows up in the startup
	// log. Sessions load their own copy; a failure here is not fatal.
	checkCtx, cancelCheck := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout)
	if _, err := core.Load(checkCtx, cfg.Catalog.Source, core.LoadOptions{Sheet: cfg.Catalog.Sheet}); err != nil {
		slog.Warn("collection source check failed", "error", core.FormatUserError(err))
	}
	cancelCheck()

	server := web.NewServer(cfg)

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	<-stopped
	slog.Info("server stopped")
}
