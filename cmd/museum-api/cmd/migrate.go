package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/database"
	"github.com/Jasch-M/asyncmuseum/internal/database/migrations"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, cfg *config.Config, db *bun.DB, log *logger.Logger) error {
				return database.Migrate(ctx, db, cfg.Database.Driver, log)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, cfg *config.Config, db *bun.DB, log *logger.Logger) error {
				if err := requirePostgres(cfg); err != nil {
					return err
				}
				runner := migrations.NewRunner(db, log)
				defer runner.Close()
				return runner.Down()
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, cfg *config.Config, db *bun.DB, log *logger.Logger) error {
				if err := requirePostgres(cfg); err != nil {
					return err
				}
				runner := migrations.NewRunner(db, log)
				defer runner.Close()

				version, dirty, err := runner.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return migrateCmd
}

func withDatabase(ctx context.Context, opts *rootOptions, fn func(context.Context, *config.Config, *bun.DB, *logger.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := opts.bootstrap("museum-migrate")
	if err != nil {
		return err
	}
	defer log.Close()

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, cfg, db, log)
}

// requirePostgres guards the versioned commands; SQLite schemas are created
// from the models and carry no migration history.
func requirePostgres(cfg *config.Config) error {
	if cfg.Database.Driver != database.DriverPostgres {
		return fmt.Errorf("migrate: only supported for %s, not %s", database.DriverPostgres, cfg.Database.Driver)
	}
	return nil
}
