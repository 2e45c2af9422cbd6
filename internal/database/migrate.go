package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite3 "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/at-ishikawa/english-companion/internal/config"
	"github.com/at-ishikawa/english-companion/schemas"
)

// Migrator applies the embedded migrations for one driver.
// It owns a dedicated connection that Close releases.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a dedicated connection for cfg and prepares the migrations for its driver.
func NewMigrator(cfg config.DatabaseConfig) (*Migrator, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("Open() > %w", err)
	}

	src, err := iofs.New(schemas.Migrations, MigrationsPath(cfg.Driver))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("iofs.New() > %w", err)
	}

	var driver migratedb.Driver
	switch cfg.Driver {
	case config.DriverMySQL:
		driver, err = migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	case config.DriverPostgres:
		driver, err = migratepostgres.WithInstance(db.DB, &migratepostgres.Config{})
	case config.DriverSQLite3:
		driver, err = migratesqlite3.WithInstance(db.DB, &migratesqlite3.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration driver(%s) > %w", cfg.Driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, cfg.Driver, driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate.NewWithInstance() > %w", err)
	}
	return &Migrator{m: m}, nil
}

// MigrationsPath is the directory inside schemas.Migrations holding driver's migrations.
func MigrationsPath(driver string) string {
	return "migrations/" + driver
}

// Up applies all pending migrations. Being already up to date is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up() > %w", err)
	}
	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (mg *Migrator) Down(steps int) error {
	var err error
	if steps <= 0 {
		err = mg.m.Down()
	} else {
		err = mg.m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback migrations > %w", err)
	}
	return nil
}

// Version returns the current schema version; ok is false when nothing has been applied.
func (mg *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("m.Version() > %w", err)
	}
	return version, dirty, true, nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
