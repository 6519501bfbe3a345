// Package store persists computed underwriting analyses per deal. The engine
// never touches the database itself; callers that run without a DATABASE_URL
// simply skip persistence.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the shared connection pool from a connection URL.
// Subsequent calls are no-ops.
func InitDB(ctx context.Context, databaseURL string) error {
	var err error
	once.Do(func() {
		if databaseURL == "" {
			err = fmt.Errorf("database URL not configured")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(databaseURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, cfg)
	})
	return err
}

// GetPool returns the shared pool, nil when persistence is not configured.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
