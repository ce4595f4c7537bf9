package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, account *domain.Account) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListFn         func(ctx context.Context) ([]*domain.Account, error)
	ListByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)
	UpdateFn       func(ctx context.Context, account *domain.Account) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Accounts    map[uuid.UUID]*domain.Account
	CreateError error
	UpdateError error
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Accounts {
		if existing.Number == account.Number {
			return store.ErrAccountNumberExists
		}
	}

	m.Accounts[account.ID] = account
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	account, exists := m.Accounts[id]
	if !exists {
		return nil, store.ErrAccountNotFound
	}

	return account, nil
}

// List implements the AccountStore interface
func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	accounts := make([]*domain.Account, 0, len(m.Accounts))
	for _, account := range m.Accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// ListByUserID implements the AccountStore interface
func (m *MockAccountStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	accounts := make([]*domain.Account, 0)
	for _, account := range m.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// Update implements the AccountStore interface
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Accounts[account.ID]; !exists {
		return store.ErrAccountNotFound
	}

	m.Accounts[account.ID] = account
	return nil
}

// Delete implements the AccountStore interface
func (m *MockAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Accounts[id]; !exists {
		return store.ErrAccountNotFound
	}

	delete(m.Accounts, id)
	return nil
}

// WithTx implements the AccountStore interface. The mock has no real
// transaction state, so it returns the same instance.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
