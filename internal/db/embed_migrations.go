package db

import "embed"

// MigrationFS embeds SQL migrations per dialect: migrations/postgres and migrations/sqlite.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var MigrationFS embed.FS

// MigrationDir returns the embedded migration directory for driver.
func MigrationDir(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "migrations/postgres", nil
	case DriverSQLite:
		return "migrations/sqlite", nil
	}
	return "", errUnknownDriver(driver)
}
