package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken and
	// ErrNationalIDExists if the national ID is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List retrieves all users ordered by creation time.
	// Returns an empty slice when there are no users.
	List(ctx context.Context) ([]*domain.User, error)

	// Update modifies an existing user's details.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists or ErrNationalIDExists if updating to a
	// value that already exists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether any user holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByNationalID reports whether any user holds the given national ID.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
