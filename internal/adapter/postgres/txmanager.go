package postgres

import (
	"context"
	"fmt"
)

// TxManager manages database transactions using the context pattern.
// RunInTx always opens a top-level transaction; code that must be able to
// fail without aborting the caller's transaction uses RunInSavepoint.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// RunInSavepoint executes fn inside a savepoint of the transaction carried by
// ctx. An error from fn rolls back to the savepoint only, leaving the outer
// transaction usable. Without a transaction in ctx it behaves like RunInTx.
func (m *TxManager) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	outer, ok := txFromCtx(ctx)
	if !ok {
		return m.RunInTx(ctx, fn)
	}

	sp, err := outer.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = sp.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, sp)); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback to savepoint failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}

	return nil
}
