package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
)

// TransactionStore defines the interface for transaction data persistence.
// Transaction rows are immutable; there is no Update.
type TransactionStore interface {
	// Create saves a new transaction to the store.
	// Returns ErrInvalidEntity if the referenced account does not exist.
	Create(ctx context.Context, transaction *domain.Transaction) error

	// GetByID retrieves a transaction by its unique ID.
	// Returns ErrTransactionNotFound if the transaction does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)

	// List retrieves all transactions, newest first.
	List(ctx context.Context) ([]*domain.Transaction, error)

	// ListByAccountID retrieves all transactions recorded against the
	// given account, newest first. Returns an empty slice when none exist.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)

	// Delete removes a transaction row by its ID. The balance effect of
	// the transaction is NOT reversed.
	// Returns ErrTransactionNotFound if the transaction does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TransactionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TransactionStore
}
