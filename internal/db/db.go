package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsDrac/bidhub/internal/database"
	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the query surface used by the services: plain queries against the
// pool plus transactional units of work.
type Store interface {
	database.Querier
	RunTx(ctx context.Context, fn func(q database.Querier) error) error
}

type DB struct {
	*database.Queries
	Pool   *pgxpool.Pool
	closed bool
}

var _ Store = (*DB)(nil)

func NewDB(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("[DB] invalid dsn: %w", err)
	}

	// connection pooling
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := withTimeout(ctx)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("[DB] connection established...", "max_conns", poolCfg.MaxConns)

	return NewFromPool(pool), nil
}

// NewFromPool wraps an already opened pool.
func NewFromPool(pool *pgxpool.Pool) *DB {
	return &DB{
		Queries: database.New(pool),
		Pool:    pool,
	}
}

func (d *DB) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.Pool.Close()
}
