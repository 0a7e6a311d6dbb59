package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/utils/safe"

	_ "github.com/lib/pq"
)

type config struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	pingTimeout     time.Duration
}

type Option func(*config)

func WithMaxOpenConns(n int) Option {
	return func(cfg *config) {
		cfg.maxOpenConns = n
	}
}

func WithMaxIdleConns(n int) Option {
	return func(cfg *config) {
		cfg.maxIdleConns = n
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(cfg *config) {
		cfg.connMaxLifetime = d
	}
}

func WithPingTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.pingTimeout = d
	}
}

// Open connects to PostgreSQL through lib/pq and checks the connection.
func Open(ctx context.Context, dsn string, options ...Option) (*sql.DB, error) {
	cfg := &config{
		maxOpenConns:    10,
		maxIdleConns:    5,
		connMaxLifetime: 30 * time.Minute,
		pingTimeout:     5 * time.Second,
	}
	for _, opt := range options {
		opt(cfg)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(cfg.maxIdleConns)
	db.SetConnMaxLifetime(cfg.connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to ping database")
	}

	return db, nil
}

// id is TEXT rather than UUID: callers look up the id column with values
// that may be identity subjects, which must miss instead of failing a cast.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                  TEXT PRIMARY KEY,
	identity_id         TEXT UNIQUE NOT NULL,
	github_access_token TEXT,
	github_username     TEXT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the users table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to create users table")
	}
	return nil
}
