// Package migrate runs database migrations from embedded SQL files using golang-migrate.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"carbon-footprint/backend/internal/db"
)

// ErrNoChange is returned when Up/Down has nothing to do (already at target version).
var ErrNoChange = migrate.ErrNoChange

// Run opens driver/dsn, applies migrations in the given direction and closes the connection.
// direction must be "up" or "down". Returns ErrNoChange when already at the target version.
func Run(driver, dsn, direction string) error {
	if dsn == "" {
		return errors.New("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("direction must be up or down, got %q", direction)
	}
	conn, err := db.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: open: %w", err)
	}
	defer conn.Close()

	m, err := newMigrate(conn, driver)
	if err != nil {
		return err
	}
	switch direction {
	case "up":
		return m.Up()
	default:
		return m.Down()
	}
}

// Apply migrates an already-open connection up to the latest version. ErrNoChange is not an error.
// The caller keeps ownership of conn.
func Apply(conn *sql.DB, driver string) error {
	m, err := newMigrate(conn, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newMigrate(conn *sql.DB, driver string) (*migrate.Migrate, error) {
	dir, err := db.MigrationDir(driver)
	if err != nil {
		return nil, err
	}
	sourceDriver, err := iofs.New(db.MigrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("migrate source: %w", err)
	}

	var (
		target database.Driver
		name   string
	)
	switch driver {
	case db.DriverPostgres:
		target, err = postgres.WithInstance(conn, &postgres.Config{})
		name = "postgres"
	case db.DriverSQLite:
		target, err = sqlite.WithInstance(conn, &sqlite.Config{})
		name = "sqlite"
	}
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, name, target)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return m, nil
}
