package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// CreateUser registers a new user. The email must be well formed and
	// both the email and the national ID must be unique.
	CreateUser(ctx context.Context, name, email, nationalID string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// UpdateUser replaces the user's name, email and national ID.
	// Email uniqueness is re-checked only when the email changed.
	UpdateUser(ctx context.Context, userID uuid.UUID, name, email, nationalID string) (*domain.User, error)

	// DeleteUser deletes a user by their ID.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	transactor store.Transactor
	logger     *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	transactor store.Transactor,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore:  userStore,
		transactor: transactor,
		logger:     logger.With("component", "user_service"),
	}
}

// CreateUser registers a new user.
// Uses a transaction so the uniqueness probes and the insert are one atomic unit.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	name, email, nationalID string,
) (*domain.User, error) {
	// Reject malformed email before touching the store.
	if err := domain.ValidateEmail(email); err != nil {
		s.logger.Debug("rejected user creation with invalid email",
			"error", err)
		return nil, err
	}

	user, err := domain.NewUser(name, email, nationalID)
	if err != nil {
		s.logger.Debug("failed to create user object", "error", err)
		return nil, err
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		// The email and national ID checks are independent: each failure
		// maps to its own error.
		emailTaken, err := txStore.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if emailTaken {
			return store.ErrEmailExists
		}

		nationalIDTaken, err := txStore.ExistsByNationalID(ctx, user.NationalID)
		if err != nil {
			return fmt.Errorf("failed to check national ID uniqueness: %w", err)
		}
		if nationalIDTaken {
			return store.ErrNationalIDExists
		}

		return txStore.Create(ctx, user)
	})

	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to create user with duplicate unique field",
				"error", err)
		} else {
			s.logger.Error("failed to save user", "error", err)
		}
		return nil, err
	}

	s.logger.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser replaces the user's mutable fields.
// Following the pattern of getting the complete user first, then updating
// the fields, inside a single transaction. Email uniqueness is only
// re-checked when the email actually changed, so a user can be saved with
// their own current email.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	name, email, nationalID string,
) (*domain.User, error) {
	if err := domain.ValidateEmail(email); err != nil {
		s.logger.Debug("rejected user update with invalid email",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	var updated *domain.User
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if user.Email != email {
			emailTaken, err := txStore.ExistsByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to check email uniqueness: %w", err)
			}
			if emailTaken {
				return store.ErrEmailExists
			}
		}

		user.Name = name
		user.Email = email
		user.NationalID = nationalID

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			s.logger.Debug("attempted to update non-existent user", "user_id", userID)
		case store.IsDuplicateError(err):
			s.logger.Debug("attempted to update user to a duplicate unique field",
				"user_id", userID)
		default:
			s.logger.Error("failed to update user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("user updated successfully", "user_id", userID)
	return updated, nil
}

// DeleteUser deletes a user by their ID.
// Uses a transaction to ensure atomicity of the operation.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to delete non-existent user", "user_id", userID)
		} else {
			s.logger.Error("failed to delete user",
				"error", err,
				"user_id", userID)
		}
		return err
	}

	s.logger.Info("user deleted successfully", "user_id", userID)
	return nil
}
