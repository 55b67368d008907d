// Package database opens the Postgres pool and applies the embedded schema
// migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pingTimeout = 5 * time.Second

	sqlStateUniqueViolation = "23505"
)

var ErrNotConfigured = errors.New("database not configured")

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Pool is a *sql.DB over the pgx stdlib driver. A nil *Pool means storage
// runs in memory; its methods tolerate that.
type Pool struct {
	db *sql.DB
}

// New connects and pings. An empty URL yields a nil pool and no error.
func New(ctx context.Context, cfg Config) (*Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	cfg.applyLimits(db)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Pool{db: db}, nil
}

// zero values keep the database/sql defaults
func (c Config) applyLimits(db *sql.DB) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
}

func (p *Pool) DB() *sql.DB {
	return p.db
}

func (p *Pool) configured() bool {
	return p != nil && p.db != nil
}

// Ping backs the readiness check.
func (p *Pool) Ping(ctx context.Context) error {
	if !p.configured() {
		return ErrNotConfigured
	}
	return p.db.PingContext(ctx)
}

func (p *Pool) Close() error {
	if !p.configured() {
		return nil
	}
	return p.db.Close()
}

// Stats feeds the connection gauges.
func (p *Pool) Stats() sql.DBStats {
	if !p.configured() {
		return sql.DBStats{}
	}
	return p.db.Stats()
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505 anywhere in
// its chain. Stores map it to their duplicate-key domain error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
