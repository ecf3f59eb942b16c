// Package cli implements the footprint command line: pure calculations, factor tables,
// and aggregation and reports over a configured database.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/logging"
)

// NewRootCmd creates the root command for the footprint CLI, reading defaults from the process environment.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
// DATABASE_DRIVER, DATABASE_URL, LOG_LEVEL and LOG_FORMAT seed the flag defaults.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	env := func(key, def string) string {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v
		}
		return def
	}
	defaultFormat := logging.FormatJSON
	if term.IsTerminal(int(os.Stderr.Fd())) {
		defaultFormat = logging.FormatConsole
	}

	cmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Carbon footprint calculator",
		Long:          "footprint: compute kg CO2e emissions for business activities and report per-user footprints",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			format, _ := cmd.Flags().GetString("log-format")
			l := logging.ComponentLogger(logging.New(level, format, cmd.ErrOrStderr()), "cli")
			cmd.SetContext(logging.WithContext(cmd.Context(), l))
			l.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("log-level", env("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	pf.String("log-format", env("LOG_FORMAT", defaultFormat), "log format (json, console)")
	pf.String("db-driver", env("DATABASE_DRIVER", db.DriverSQLite), "database driver (pgx, sqlite)")
	pf.String("db-url", env("DATABASE_URL", "footprint.db"), "database DSN or sqlite file path")
	pf.Bool("migrate", false, "apply pending migrations before running")

	cmd.AddCommand(newCalcCmd(), newCategoriesCmd(), newAggregateCmd(), newReportCmd())
	return cmd
}

const rootCmdExample = `  # Compute a diesel trip without storing it
  footprint calc transport --distance 100 --consumption 30 --fuel diesel

  # List the factor table of every category
  footprint categories

  # Aggregate a user's stored records
  footprint aggregate --user 8d3c... --db-driver sqlite --db-url footprint.db

  # Print a user's report
  footprint report --user 8d3c...`
