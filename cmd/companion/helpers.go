package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/config"
	"github.com/at-ishikawa/english-companion/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("newLogger() > %w", err)
	}
	defer log.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Ping(ctx, db, cfg.ConnectAttempts, func(n uint, err error) {
		log.Warn("database is not reachable yet", "attempt", n+1, "error", err)
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Ping() > %w", err)
	}
	return db, nil
}
