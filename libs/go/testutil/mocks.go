package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTx is a pgx.Tx that records Commit and Rollback. Other methods hit the
// nil embedded Tx and panic.
type MockTx struct {
	pgx.Tx
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTxBeginner hands out a prepared MockTx
type MockTxBeginner struct {
	mock.Mock
}

func (m *MockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

// NewCommittingTx returns a beginner whose transaction expects a commit
// followed by the deferred rollback reporting ErrTxClosed.
func NewCommittingTx(t *testing.T) (*MockTxBeginner, *MockTx) {
	t.Helper()

	tx := &MockTx{}
	tx.On("Commit", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(pgx.ErrTxClosed).Once()

	beginner := &MockTxBeginner{}
	beginner.On("Begin", mock.Anything).Return(tx, nil).Once()

	t.Cleanup(func() {
		beginner.AssertExpectations(t)
		tx.AssertExpectations(t)
	})
	return beginner, tx
}

// NewRollingBackTx returns a beginner whose transaction expects only a rollback
func NewRollingBackTx(t *testing.T) (*MockTxBeginner, *MockTx) {
	t.Helper()

	tx := &MockTx{}
	tx.On("Rollback", mock.Anything).Return(nil).Once()

	beginner := &MockTxBeginner{}
	beginner.On("Begin", mock.Anything).Return(tx, nil).Once()

	t.Cleanup(func() {
		beginner.AssertExpectations(t)
		tx.AssertExpectations(t)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
	return beginner, tx
}
