package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/logger"
	"go.uber.org/zap"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs fn inside one transaction with a Querier bound to it
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(q db.Querier) error) error
}

// PoolTxRunner is the TxRunner backed by a connection pool
type PoolTxRunner struct {
	beginner TxBeginner
}

// NewPoolTxRunner creates a TxRunner over beginner
func NewPoolTxRunner(beginner TxBeginner) *PoolTxRunner {
	return &PoolTxRunner{beginner: beginner}
}

// RunInTransaction executes fn with transaction-scoped queries
func (r *PoolTxRunner) RunInTransaction(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransaction(ctx, r.beginner, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes fn within a database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, beginner TxBeginner, fn TransactionFunc) error {
	tx, err := beginner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// ErrTxClosed means the commit went through
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionRetry retries WithTransaction up to maxRetries times when
// Postgres reports a serialization failure.
func WithTransactionRetry(ctx context.Context, beginner TxBeginner, maxRetries int, fn TransactionFunc) error {
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, beginner, fn)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != "40001" || attempt == maxRetries {
			break
		}

		logger.Log.Warn("Transaction failed due to serialization error, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
	}

	return err
}
