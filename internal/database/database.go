package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	maxConnectAttempts = 5
	connectRetryDelay  = 2 * time.Second
)

// Open connects to the configured database and wraps it in bun, retrying
// the initial ping while the server comes up.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*bun.DB, error) {
	var (
		sqldb *sql.DB
		err   error
	)

	switch cfg.Driver {
	case DriverPostgres:
		sqldb, err = sql.Open("postgres", postgresDSN(cfg))
	case DriverSQLite:
		sqldb, err = sql.Open(sqliteshim.ShimName, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Driver, err)
	}

	configurePool(sqldb, cfg)

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to %s (attempt %d/%d)", cfg.Driver, attempt, maxConnectAttempts))
		if err = sqldb.PingContext(ctx); err == nil {
			break
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to connect to %s: %v", cfg.Driver, err))
		if attempt < maxConnectAttempts {
			select {
			case <-ctx.Done():
				sqldb.Close()
				return nil, ctx.Err()
			case <-time.After(connectRetryDelay):
			}
		}
	}
	if err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.Driver, maxConnectAttempts, err)
	}

	log.Info("DATABASE", fmt.Sprintf("✅ %s connection successful", cfg.Driver))

	if cfg.Driver == DriverSQLite {
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

func configurePool(sqldb *sql.DB, cfg config.DatabaseConfig) {
	if cfg.Driver == DriverSQLite {
		// One connection: in-memory databases are per connection and SQLite
		// serialises writers anyway.
		sqldb.SetMaxOpenConns(1)
		return
	}
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		sqldb.SetConnMaxLifetime(cfg.MaxLifetime)
	}
}

// postgresDSN fills in credentials from DB_USERNAME/DB_PASSWORD when the
// URL does not carry its own.
func postgresDSN(cfg config.DatabaseConfig) string {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" {
		return cfg.URL
	}
	if u.User == nil && cfg.Username != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			u.User = url.User(cfg.Username)
		}
	}
	return u.String()
}
