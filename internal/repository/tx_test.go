package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *stubTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type stubDB struct {
	tx       *stubTx
	beginErr error
}

func (d *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	db := &stubDB{tx: &stubTx{}}

	err := WithTx(context.Background(), db, func(tx pgx.Tx) error { return nil })
	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := &stubDB{tx: &stubTx{}}
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx pgx.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTxPropagatesBeginError(t *testing.T) {
	db := &stubDB{beginErr: errors.New("no connection")}

	err := WithTx(context.Background(), db, func(tx pgx.Tx) error {
		t.Fatal("work must not run when begin fails")
		return nil
	})
	require.Error(t, err)
}

func TestWithTxReportsCommitFailure(t *testing.T) {
	db := &stubDB{tx: &stubTx{commitErr: errors.New("connection reset")}}

	err := WithTx(context.Background(), db, func(tx pgx.Tx) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit tx")
}
