package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner is the slice of the pool the transaction helper needs. Satisfied
// by *pgxpool.Pool in production and by fakes in tests.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn inside a transaction. Any error from fn aborts the whole
// unit; the deferred rollback is a no-op after a successful commit.
func WithTx(ctx context.Context, db Beginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
