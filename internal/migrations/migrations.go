// Package migrations provisions the postgres schema with versioned SQL
// migrations.
//
// The schema matches what database.Migrate creates with gorm. Use these
// migrations when the schema is managed outside of the application, i.e.
// with DB_AUTO_MIGRATE=false.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Source returns the embedded migrations.
func Source() (source.Driver, error) {
	d, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}
	return d, nil
}

// Status is the schema version before and after a migration run.
type Status struct {
	Before uint
	After  uint
}

// Up applies all pending migrations to the postgres database at dsn.
func Up(dsn string) (Status, error) {
	return run(dsn, func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts all migrations.
func Down(dsn string) (Status, error) {
	return run(dsn, func(m *migrate.Migrate) error { return m.Down() })
}

func run(dsn string, step func(*migrate.Migrate) error) (Status, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return Status{}, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return Status{}, fmt.Errorf("create postgres driver: %w", err)
	}

	d, err := Source()
	if err != nil {
		return Status{}, err
	}

	m, err := migrate.NewWithInstance("iofs", d, "postgres", driver)
	if err != nil {
		return Status{}, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	var status Status
	status.Before, err = version(m)
	if err != nil {
		return status, err
	}

	err = step(m)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("run migrations: %w", err)
	}

	status.After, err = version(m)
	if err != nil {
		return status, err
	}

	log.Info().Uint("before", status.Before).Uint("after", status.After).Msg("Migration status")
	return status, nil
}

// version returns the current schema version, 0 for an empty database.
func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("schema version %d is dirty, fix the database and force the version", v)
	}
	return v, nil
}
