package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"carbon-footprint/backend/internal/app"
	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/db/migrate"
	"carbon-footprint/backend/internal/logging"
)

// openServices opens the database named by the persistent flags and wires the services on it.
// The caller closes the returned connection.
func openServices(cmd *cobra.Command) (*app.Services, *sql.DB, error) {
	driver, _ := cmd.Flags().GetString("db-driver")
	dsn, _ := cmd.Flags().GetString("db-url")
	conn, err := db.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if apply, _ := cmd.Flags().GetBool("migrate"); apply {
		if err := migrate.Apply(conn, driver); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logging.FromContext(cmd.Context()).Info().Str("driver", driver).Msg("migrations applied")
	}
	return app.NewServices(conn, app.Options{}), conn, nil
}
