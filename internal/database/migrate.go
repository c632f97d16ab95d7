package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Jasch-M/asyncmuseum/internal/database/migrations"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
)

// Migrate brings the schema up to date for the given driver.
func Migrate(ctx context.Context, db *bun.DB, driver string, log *logger.Logger) error {
	switch driver {
	case DriverPostgres:
		runner := migrations.NewRunner(db, log)
		defer runner.Close()
		return runner.Up()
	case DriverSQLite:
		if err := CreateSchema(ctx, db); err != nil {
			return err
		}
		log.Info("MIGRATE", "SQLite schema ensured")
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}
