package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn             func(ctx context.Context, user *domain.User) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFn               func(ctx context.Context) ([]*domain.User, error)
	UpdateFn             func(ctx context.Context, user *domain.User) error
	DeleteFn             func(ctx context.Context, id uuid.UUID) error
	ExistsByEmailFn      func(ctx context.Context, email string) (bool, error)
	ExistsByNationalIDFn func(ctx context.Context, nationalID string) (bool, error)

	// Data for default implementation
	Users       map[uuid.UUID]*domain.User
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
		if existing.NationalID == user.NationalID {
			return store.ErrNationalIDExists
		}
	}

	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	return users, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return store.ErrUserNotFound
	}

	m.Users[user.ID] = user
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return store.ErrUserNotFound
	}

	delete(m.Users, id)
	return nil
}

// ExistsByEmail implements the UserStore interface
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByNationalID implements the UserStore interface
func (m *MockUserStore) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	if m.ExistsByNationalIDFn != nil {
		return m.ExistsByNationalIDFn(ctx, nationalID)
	}

	for _, user := range m.Users {
		if user.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the UserStore interface. The mock has no real
// transaction state, so it returns the same instance.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
