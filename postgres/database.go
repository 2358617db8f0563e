package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	defaultMaxConnLifetime   = time.Hour
	defaultMaxConnIdleTime   = 30 * time.Minute
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = 5 * time.Second
)

type DB struct {
	*pgxpool.Pool
}

type Options struct {
	// URL should be a valid postgres connection string (such as a postgres-url).
	URL string
	// Schema all tables live in. It is created if it does not exist yet. Empty uses the server's
	// default search path.
	Schema string
	// MaxConns limits the size of the connection pool. Zero uses the pgxpool default.
	MaxConns int32
}

// Initialise a new database connection pool.
func NewDB(ctx context.Context, opts Options) (*DB, error) {
	slog.Info("Connecting to postgres database", "schema", opts.Schema)
	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres connection string: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.MaxConnLifetime = defaultMaxConnLifetime
	cfg.MaxConnIdleTime = defaultMaxConnIdleTime
	cfg.HealthCheckPeriod = defaultHealthCheckPeriod
	cfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	// Every pooled connection has to use the schema, not just the one that happens to create it
	if opts.Schema != "" {
		cfg.ConnConfig.RuntimeParams["search_path"] = opts.Schema
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres database: %w", err)
	}
	db := &DB{pool}

	if opts.Schema != "" {
		if err := db.CreateSchema(ctx, opts.Schema); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return db, nil
}

// Create the database schema if it does not exist already.
func (db *DB) CreateSchema(ctx context.Context, schema string) error {
	slog.Info("Creating postgres schema", "schema", schema)
	if _, err := db.Exec(
		ctx,
		"CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{schema}.Sanitize(),
	); err != nil {
		return fmt.Errorf("cannot create schema %q: %w", schema, err)
	}
	return nil
}

// Delete the specified database schema, beware that this will delete all tables and data in the schema.
func (db *DB) DeleteSchema(ctx context.Context, schema string) error {
	slog.Info("Deleting postgres schema", "schema", schema)
	if _, err := db.Exec(
		ctx,
		"DROP SCHEMA IF EXISTS "+pgx.Identifier{schema}.Sanitize()+" CASCADE",
	); err != nil {
		return fmt.Errorf("cannot delete schema %q: %w", schema, err)
	}
	return nil
}

func (db *DB) createGooseProvider() (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("cannot get embedFS migrations folder: %w", err)
	}
	return goose.NewProvider(
		goose.DialectPostgres,
		stdlib.OpenDBFromPool(db.Pool),
		migrations,
		goose.WithVerbose(true), // Enable logging (as with goose.Up)
	)
}

// Migrate the database to the latest version.
func (db *DB) Migrate(ctx context.Context) error {
	provider, err := db.createGooseProvider()
	if err != nil {
		return fmt.Errorf("cannot create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("cannot run database migrations: %w", err)
	}
	for _, result := range results {
		slog.Debug("Applied migration", "version", result.Source.Version, "duration", result.Duration)
	}

	if err := provider.Close(); err != nil {
		return fmt.Errorf("cannot close goose provider connection: %w", err)
	}
	return nil
}

// Migrate the database down a single step.
func (db *DB) MigrateDown(ctx context.Context) error {
	provider, err := db.createGooseProvider()
	if err != nil {
		return fmt.Errorf("cannot create goose provider: %w", err)
	}

	if _, err := provider.Down(ctx); err != nil {
		return fmt.Errorf("cannot run database down migrations: %w", err)
	}

	if err := provider.Close(); err != nil {
		return fmt.Errorf("cannot close goose provider connection: %w", err)
	}
	return nil
}
