// Package repository provides database access layer.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable is returned when no usable connection could be obtained.
var ErrUnavailable = errors.New("database unavailable")

// PoolConfig holds connection pool sizing.
type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

// Repository provides database access methods.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new Repository with a connection pool.
func New(ctx context.Context, databaseURL string, poolCfg PoolConfig) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if poolCfg.MaxConns > 0 {
		config.MaxConns = poolCfg.MaxConns
	}
	if poolCfg.MinConns > 0 {
		config.MinConns = poolCfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// withConn acquires a connection, checks it is alive and runs fn on it.
// The connection goes back to the pool on every return path.
func (r *Repository) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", ErrUnavailable, err)
	}
	defer conn.Release()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("%w: ping connection: %w", ErrUnavailable, err)
	}

	return fn(conn)
}
