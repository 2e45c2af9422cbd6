// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/at-ishikawa/english-companion/internal/config"
)

// Open opens a connection pool for the configured driver. It does not contact the server.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn, err := DataSourceName(cfg)
	if err != nil {
		return nil, fmt.Errorf("DataSourceName() > %w", err)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if cfg.Driver == config.DriverSQLite3 {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return db, nil
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// DataSourceName returns cfg.DSN when set, otherwise builds one from the individual fields.
func DataSourceName(cfg config.DatabaseConfig) (string, error) {
	if cfg.DSN != "" {
		if cfg.Driver != config.DriverMySQL {
			return cfg.DSN, nil
		}
		mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("mysql.ParseDSN() > %w", err)
		}
		// timestamps scan into time.Time and migrations hold several statements
		mysqlCfg.ParseTime = true
		mysqlCfg.MultiStatements = true
		return mysqlCfg.FormatDSN(), nil
	}

	switch cfg.Driver {
	case config.DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.Username
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mysqlCfg.DBName = cfg.Database
		mysqlCfg.ParseTime = true
		mysqlCfg.MultiStatements = true
		if cfg.TLS {
			mysqlCfg.TLSConfig = "true"
		}
		if len(cfg.Params) > 0 {
			mysqlCfg.Params = cfg.Params
		}
		return mysqlCfg.FormatDSN(), nil

	case config.DriverPostgres:
		query := url.Values{}
		query.Set("sslmode", "disable")
		if cfg.TLS {
			query.Set("sslmode", "require")
		}
		for k, v := range cfg.Params {
			query.Set(k, v)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.Username, cfg.Password),
			Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
			Path:     "/" + cfg.Database,
			RawQuery: query.Encode(),
		}
		return u.String(), nil

	case config.DriverSQLite3:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", fmt.Errorf("create data directory: %w", err)
			}
		}
		return cfg.Path + "?_foreign_keys=on&_busy_timeout=5000", nil
	}

	return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Ping checks connectivity, retrying with exponential backoff.
func Ping(ctx context.Context, db *sqlx.DB, attempts uint, onRetry func(n uint, err error)) error {
	if attempts == 0 {
		attempts = 1
	}
	if onRetry == nil {
		onRetry = func(uint, error) {}
	}
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(onRetry),
	); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
