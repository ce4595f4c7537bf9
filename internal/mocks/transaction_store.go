package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// MockTransactionStore implements store.TransactionStore for testing
type MockTransactionStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, transaction *domain.Transaction) error
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListFn            func(ctx context.Context) ([]*domain.Transaction, error)
	ListByAccountIDFn func(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Transactions map[uuid.UUID]*domain.Transaction
	CreateError  error
}

// NewMockTransactionStore creates a new mock store with initialized defaults
func NewMockTransactionStore() *MockTransactionStore {
	return &MockTransactionStore{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
	}
}

// Create implements the TransactionStore interface
func (m *MockTransactionStore) Create(ctx context.Context, transaction *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, transaction)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Transactions[transaction.ID] = transaction
	return nil
}

// GetByID implements the TransactionStore interface
func (m *MockTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	transaction, exists := m.Transactions[id]
	if !exists {
		return nil, store.ErrTransactionNotFound
	}

	return transaction, nil
}

// List implements the TransactionStore interface
func (m *MockTransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	return m.sorted(m.Transactions), nil
}

// ListByAccountID implements the TransactionStore interface
func (m *MockTransactionStore) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	if m.ListByAccountIDFn != nil {
		return m.ListByAccountIDFn(ctx, accountID)
	}

	matching := make(map[uuid.UUID]*domain.Transaction)
	for id, transaction := range m.Transactions {
		if transaction.AccountID == accountID {
			matching[id] = transaction
		}
	}
	return m.sorted(matching), nil
}

// Delete implements the TransactionStore interface
func (m *MockTransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Transactions[id]; !exists {
		return store.ErrTransactionNotFound
	}

	delete(m.Transactions, id)
	return nil
}

// WithTx implements the TransactionStore interface. The mock has no real
// transaction state, so it returns the same instance.
func (m *MockTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return m
}

// sorted returns transactions newest first, matching the real store.
func (m *MockTransactionStore) sorted(transactions map[uuid.UUID]*domain.Transaction) []*domain.Transaction {
	result := make([]*domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		result = append(result, transaction)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionDate.After(result[j].TransactionDate)
	})
	return result
}
