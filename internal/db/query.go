package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/itsDrac/bidhub/internal/database"
	"github.com/jackc/pgx/v5"
)

var ErrClosed = errors.New("[DB] pool is closed")

// RunTx runs fn inside a read committed transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (d *DB) RunTx(ctx context.Context, fn func(q database.Querier) error) error {
	if d.Pool == nil || d.closed {
		return ErrClosed
	}

	tx, err := d.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(d.Queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Error("[DB] rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
