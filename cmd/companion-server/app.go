package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/english-companion/internal/config"
	"github.com/at-ishikawa/english-companion/internal/database"
	"github.com/at-ishikawa/english-companion/internal/lesson"
	"github.com/at-ishikawa/english-companion/internal/logger"
	"github.com/at-ishikawa/english-companion/internal/progress"
	"github.com/at-ishikawa/english-companion/internal/quiz"
	"github.com/at-ishikawa/english-companion/internal/server"
	"github.com/at-ishikawa/english-companion/internal/vocabulary"
)

type App struct {
	log             *logger.Logger
	db              *sqlx.DB
	server          *http.Server
	shutdownTimeout time.Duration
}

func newApp(ctx context.Context, configFile string) (*App, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logger.New() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Ping(ctx, db, cfg.Database.ConnectAttempts, func(n uint, err error) {
		log.Warn("database is not reachable yet", "attempt", n+1, "driver", cfg.Database.Driver, "error", err)
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Ping() > %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := migrateUp(cfg.Database, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	lessonRepo := lesson.NewDBRepository(db)
	router, err := server.NewRouter(server.RouterConfig{
		Server:     cfg.Server,
		Logger:     log,
		Lessons:    lesson.NewService(lessonRepo),
		Quizzes:    quiz.NewService(quiz.NewDBRepository(db), lessonRepo, log),
		Vocabulary: vocabulary.NewService(vocabulary.NewDBRepository(db), log),
		Progress:   progress.NewService(progress.NewDBRepository(db)),
		Now:        time.Now,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("server.NewRouter() > %w", err)
	}

	return &App{
		log:             log,
		db:              db,
		server:          server.NewHTTPServer(cfg.Server.Port, router),
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
	}, nil
}

func migrateUp(cfg config.DatabaseConfig, log *logger.Logger) error {
	migrator, err := database.NewMigrator(cfg)
	if err != nil {
		return fmt.Errorf("database.NewMigrator() > %w", err)
	}
	defer func() { _ = migrator.Close() }()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("migrator.Up() > %w", err)
	}
	version, _, _, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("migrator.Version() > %w", err)
	}
	log.Info("database migrated", "driver", cfg.Driver, "version", version)
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server listening", "addr", a.server.Addr)
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutting down", "timeout", a.shutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server.Shutdown() > %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server.ListenAndServe() > %w", err)
	}
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("failed to close database", "error", err)
		}
	}
	a.log.Sync()
}
