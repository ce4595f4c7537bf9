package mocks

import (
	"context"

	"github.com/lelec0/fintech-api/internal/store"
)

// MockTransactor implements store.Transactor for testing. The default
// behavior invokes the callback with a nil transaction, which works with
// the mock stores because their WithTx returns the same instance.
type MockTransactor struct {
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error

	// BeginError, when set, is returned without invoking the callback.
	BeginError error
}

// NewMockTransactor creates a pass-through transactor.
func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

// RunInTransaction implements the Transactor interface
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}

	if m.BeginError != nil {
		return m.BeginError
	}

	return fn(ctx, nil)
}
