package main

import (
	"fmt"
	"os"

	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/migrate"
	"socialdesk/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		Long: `Apply every embedded SQL migration that is not yet recorded in schema_migrations.

The connection string defaults to the DATABASE_URL environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}

			ctx := cmd.Context()
			pool, err := pgxpool.New(ctx, databaseURL)
			if err != nil {
				return errors.Wrap(err, "connect to database")
			}
			defer pool.Close()

			result, err := migrate.Apply(ctx, pool, migrations.Files, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range result.Applied {
				fmt.Fprintln(out, "applied", name)
			}
			fmt.Fprintf(out, "%d applied, %d already up to date\n", len(result.Applied), len(result.Skipped))

			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL")

	return cmd
}
