// Package main implements the entry point for the ReadArabic backend, which
// serves Arabic reading content, a personal vocabulary list with a free-tier
// cap, spaced-repetition review scheduling and dictionary lookups.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/salmansheikhutk/readarabicbackend/internal/config"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run initializes configuration, logging, the database and all application
// dependencies, then serves HTTP until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return err
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"free_tier_limit", cfg.Vocabulary.FreeTierLimit)

	db, err := setupDatabase(cfg)
	if err != nil {
		return err
	}

	if err := postgres.RunMigrations(db); err != nil {
		return err
	}
	slog.Info("schema migrations applied")

	app, err := newApplication(cfg, db)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
