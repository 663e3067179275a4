// Package main implements the entry point for the Moru API server,
// a small multi-user memo service with cookie-session authentication.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/moruhq/moru-api/internal/config"
	"github.com/moruhq/moru-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		// Startup failures abort the process: serving requests against a
		// store that may never become available helps nobody.
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application together and serves HTTP
// until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}
