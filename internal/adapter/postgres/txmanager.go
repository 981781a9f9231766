package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools satisfy it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs callbacks in a transaction carried by the context.
type TxManager struct {
	db       Beginner
	attempts int
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithRetries lets RunInTx rerun the callback up to n extra times when the
// transaction fails with a serialization failure or deadlock.
func WithRetries(n int) TxOption {
	return func(m *TxManager) {
		if n > 0 {
			m.attempts = n + 1
		}
	}
}

// NewTxManager creates a TxManager. Without options it never retries.
func NewTxManager(db Beginner, opts ...TxOption) *TxManager {
	m := &TxManager{db: db, attempts: 1}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx runs fn in a READ COMMITTED transaction, committing on nil and
// rolling back on error or panic. A nested call joins the outer transaction
// and is never retried on its own; only the outermost call retries, so fn
// must be safe to run again from the start.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("transaction retries exhausted after %d attempts: %w", m.attempts, err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(contextWithTx(ctx, tx)); err != nil {
		return err
	}

	// A failed commit ends the transaction too.
	committed = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
