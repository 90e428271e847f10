package repository

//go:generate go run -C ../.. ./db/ent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/utility-bills/gen/ent"
)

type Config struct {
	DSN              string
	SQLitePath       string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Database bundles the Ent client with the connection it runs on, which is
// either a pgx pool or a database/sql handle for SQLite.
type Database struct {
	Client *ent.Client
	Driver string
	pool   *pgxpool.Pool
	sqlDB  *sql.DB
}

// Connect opens Postgres when a DSN is configured and SQLite otherwise.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Database, error) {
	if cfg.DSN != "" {
		client, pool, err := Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &Database{Client: client, Driver: dialect.Postgres, pool: pool}, nil
	}
	if cfg.SQLitePath == "" {
		return nil, errors.New("repository: no DSN or SQLite path configured")
	}
	client, db, err := OpenSQLite(ctx, cfg.SQLitePath, logger)
	if err != nil {
		return nil, err
	}
	return &Database{Client: client, Driver: dialect.SQLite, sqlDB: db}, nil
}

// Open creates a pgx pool, wraps it for Ent, and returns both.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("repository.connect", "driver", dialect.Postgres)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("repository.connect.failed", "error", err)
		return nil, nil, err
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "utility-bills"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(cfg.StatementTimeout.Milliseconds())
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("repository.connect.failed", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("repository.connect.ok", "driver", dialect.Postgres)
	return client, pool, nil
}

// OpenSQLite opens (creating if needed) a SQLite database and migrates the
// schema. ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("repository.connect.failed", "driver", dialect.SQLite, "error", err)
		return nil, nil, err
	}
	// a single connection keeps an in-memory database alive and serializes writers
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx); err != nil {
		_ = db.Close()
		logger.Error("repository.migrate.failed", "driver", dialect.SQLite, "error", err)
		return nil, nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}
	logger.Info("repository.connect.ok", "driver", dialect.SQLite, "path", path)
	return client, db, nil
}

// Migrate creates or updates tables for the configured driver.
func (d *Database) Migrate(ctx context.Context) error {
	return d.Client.Schema.Create(ctx)
}

// Ping checks the underlying connection.
func (d *Database) Ping(ctx context.Context) error {
	switch {
	case d.pool != nil:
		return d.pool.Ping(ctx)
	case d.sqlDB != nil:
		return d.sqlDB.PingContext(ctx)
	default:
		return errors.New("repository: database not open")
	}
}

// Close closes the database connections gracefully. The Ent driver owns the
// SQLite handle, so closing the client releases it.
func (d *Database) Close(logger *slog.Logger) {
	Close(d.Client, d.pool, logger)
}

// Close closes an Ent client and its pgx pool.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("repository.close")
	if pool != nil {
		pool.Close()
	}
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("repository.close.failed", "error", err)
		}
	}
}

// HealthCheck pings the database within timeout.
func HealthCheck(ctx context.Context, db *Database, timeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	if err := db.Ping(ctx); err != nil {
		logger.Error("repository.ping.failed", "driver", db.Driver, "error", err)
		return err
	}
	logger.Debug("repository.ping.ok", "driver", db.Driver, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
