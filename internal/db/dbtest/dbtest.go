// Package dbtest provides a migrated sqlite database for repository tests.
// For tests only.
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/db/migrate"
)

// Open returns a fresh sqlite database in t.TempDir() with all migrations applied.
// The database is closed when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "footprint.db")
	conn, err := db.Open(db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("dbtest: open: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := migrate.Apply(conn, db.DriverSQLite); err != nil {
		t.Fatalf("dbtest: migrate: %v", err)
	}
	return conn
}

// InsertUser inserts a bare user row so records can reference it.
func InsertUser(t testing.TB, conn *sql.DB, id string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		id, id+"@example.com", id, "2025-01-01 00:00:00")
	if err != nil {
		t.Fatalf("dbtest: insert user %s: %v", id, err)
	}
}
