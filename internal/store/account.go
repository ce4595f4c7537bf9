package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// Returns ErrAccountNumberExists if the generated number collides,
	// and ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// List retrieves all accounts ordered by creation time.
	List(ctx context.Context) ([]*domain.Account, error)

	// ListByUserID retrieves all accounts owned by the given user,
	// ordered by creation time. Returns an empty slice when none exist.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)

	// Update modifies an existing account. The balance written here is
	// the one produced by the ledger rule; callers must run balance
	// updates inside the same transaction as the transaction row insert.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// Delete removes an account from the store by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AccountStore
}
