package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"welfare/internal/platform/database"
	"welfare/migrations"
)

func NewMigrationsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrations",
		Short: "Inspect and apply the embedded schema migrations",
	}
	cmd.AddCommand(newMigrationsListCommand(opts))
	cmd.AddCommand(newMigrationsApplyCommand(opts))
	return cmd
}

func newMigrationsListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the migrations compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := database.Migrations(migrations.FS)
			if err != nil {
				return WrapExitError(ExitCommandError, "read migrations", err)
			}
			versions := make([]string, 0, len(all))
			for _, m := range all {
				versions = append(versions, m.Version)
			}
			return render(cmd, opts, map[string][]string{"migrations": versions}, func(w io.Writer) {
				for _, v := range versions {
					fmt.Fprintln(w, v)
				}
			})
		},
	}
}

func newMigrationsApplyCommand(opts *RootOptions) *cobra.Command {
	var databaseURL string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply pending migrations to a PostgreSQL database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return NewExitError(ExitCommandError, "--database-url or DATABASE_URL is required")
			}
			pool, err := database.New(cmd.Context(), database.Config{URL: databaseURL})
			if err != nil {
				return WrapExitError(ExitCommandError, "connect to database", err)
			}
			defer pool.Close() //nolint:errcheck

			applied, err := database.Migrate(cmd.Context(), pool.DB(), migrations.FS)
			if err != nil {
				return WrapExitError(ExitCommandError, "apply migrations", err)
			}
			return render(cmd, opts, map[string][]string{"applied": applied}, func(w io.Writer) {
				if len(applied) == 0 {
					fmt.Fprintln(w, "schema is up to date")
					return
				}
				for _, v := range applied {
					fmt.Fprintln(w, "applied", v)
				}
			})
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	return cmd
}
