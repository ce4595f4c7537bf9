package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/store"
	"github.com/shopspring/decimal"
)

// accountNumberAttempts bounds retries when a generated account number
// collides with an existing one.
const accountNumberAttempts = 3

// AccountService provides account-related operations.
type AccountService interface {
	// CreateAccount opens a new account for an existing user. A zero
	// balance and the CHECKING type are used when the caller omits them.
	// Returns store.ErrUserNotFound when the user does not exist.
	CreateAccount(
		ctx context.Context,
		userID uuid.UUID,
		balance decimal.Decimal,
		accountType domain.AccountType,
	) (*domain.Account, error)

	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by the given user.
	// Returns store.ErrUserNotFound when the user does not exist.
	ListAccountsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)

	// UpdateAccount mutates the account type only; balance and owner are
	// never changed through this operation.
	UpdateAccount(
		ctx context.Context,
		accountID uuid.UUID,
		accountType domain.AccountType,
	) (*domain.Account, error)

	// DeleteAccount deletes an account by its ID.
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	accountStore store.AccountStore
	userStore    store.UserStore
	transactor   store.Transactor
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	accountStore store.AccountStore,
	userStore store.UserStore,
	transactor store.Transactor,
	logger *slog.Logger,
) AccountService {
	return &AccountServiceImpl{
		accountStore: accountStore,
		userStore:    userStore,
		transactor:   transactor,
		logger:       logger.With("component", "account_service"),
	}
}

// CreateAccount opens a new account inside a single transaction.
func (s *AccountServiceImpl) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	balance decimal.Decimal,
	accountType domain.AccountType,
) (*domain.Account, error) {
	var account *domain.Account

	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.userStore.WithTx(tx)
		txAccounts := s.accountStore.WithTx(tx)

		// The owning user must exist.
		if _, err := txUsers.GetByID(ctx, userID); err != nil {
			return err
		}

		created, err := domain.NewAccount(userID, balance, accountType)
		if err != nil {
			return err
		}

		// Account numbers are random; regenerate on the rare collision.
		for attempt := 0; ; attempt++ {
			err = txAccounts.Create(ctx, created)
			if err == nil {
				break
			}
			if !errors.Is(err, store.ErrAccountNumberExists) || attempt+1 >= accountNumberAttempts {
				return err
			}
			created.Number = domain.GenerateAccountNumber()
		}

		account = created
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to create account for non-existent user",
				"user_id", userID)
		} else {
			s.logger.Error("failed to create account",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("account created successfully",
		"account_id", account.ID,
		"user_id", userID,
		"account_type", string(account.Type))
	return account, nil
}

// GetAccount retrieves an account by its ID
func (s *AccountServiceImpl) GetAccount(
	ctx context.Context,
	accountID uuid.UUID,
) (*domain.Account, error) {
	account, err := s.accountStore.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("account not found", "account_id", accountID)
		} else {
			s.logger.Error("failed to retrieve account",
				"error", err,
				"account_id", accountID)
		}
		return nil, err
	}

	return account, nil
}

// ListAccounts retrieves all accounts
func (s *AccountServiceImpl) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}

// ListAccountsByUser retrieves all accounts owned by the given user.
// The user must exist; an empty slice is returned when they own no accounts.
func (s *AccountServiceImpl) ListAccountsByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Account, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for account listing", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user for account listing",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	accounts, err := s.accountStore.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list accounts by user",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount mutates the account type only.
// Uses a transaction following the load-then-update pattern.
func (s *AccountServiceImpl) UpdateAccount(
	ctx context.Context,
	accountID uuid.UUID,
	accountType domain.AccountType,
) (*domain.Account, error) {
	var updated *domain.Account

	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txAccounts := s.accountStore.WithTx(tx)

		account, err := txAccounts.GetByID(ctx, accountID)
		if err != nil {
			return err
		}

		if accountType != "" {
			account.Type = accountType
		}

		if err := txAccounts.Update(ctx, account); err != nil {
			return err
		}

		updated = account
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("attempted to update non-existent account",
				"account_id", accountID)
		} else {
			s.logger.Error("failed to update account",
				"error", err,
				"account_id", accountID)
		}
		return nil, err
	}

	s.logger.Info("account updated successfully",
		"account_id", accountID,
		"account_type", string(updated.Type))
	return updated, nil
}

// DeleteAccount deletes an account by its ID.
// Uses a transaction to ensure atomicity of the operation.
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.accountStore.WithTx(tx).Delete(ctx, accountID)
	})

	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("attempted to delete non-existent account",
				"account_id", accountID)
		} else {
			s.logger.Error("failed to delete account",
				"error", err,
				"account_id", accountID)
		}
		return err
	}

	s.logger.Info("account deleted successfully", "account_id", accountID)
	return nil
}
