package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
)

// Tx is an explicit transaction scope. Commit and Rollback are no-ops once the
// transaction has finished or when the receiver is nil.
type Tx struct {
	*sql.Tx
	done bool
}

// Commit makes the transaction's writes durable
func (t *Tx) Commit() error {
	if t == nil || t.Tx == nil || t.done {
		return nil
	}
	t.done = true
	if err := t.Tx.Commit(); err != nil {
		return &TransactionError{Op: "commit", Err: err}
	}
	return nil
}

// Rollback discards the transaction's writes
func (t *Tx) Rollback() error {
	if t == nil || t.Tx == nil || t.done {
		return nil
	}
	t.done = true
	if err := t.Tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return &TransactionError{Op: "rollback", Err: err}
	}
	return nil
}

// WithTx executes a function within a database transaction.
// It automatically handles begin, rollback on error or panic, and commit on success.
func WithTx(ctx context.Context, c *Conn, fn func(*Tx) error) error {
	tx, err := c.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
