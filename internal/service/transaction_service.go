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

// TransactionService provides transaction-related operations.
type TransactionService interface {
	// CreateTransaction records a transaction against an account and
	// applies its balance effect. The updated account and the new
	// transaction row are persisted in one atomic unit: either both
	// commit or neither does.
	CreateTransaction(
		ctx context.Context,
		accountID uuid.UUID,
		amount decimal.Decimal,
		transactionType domain.TransactionType,
		description string,
	) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)

	// ListTransactionsByAccount returns the statement view for an
	// account, newest first.
	// Returns store.ErrAccountNotFound when the account does not exist.
	ListTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)

	// DeleteTransaction removes a transaction row. The balance effect of
	// the transaction is NOT reversed; the account keeps reflecting it.
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error
}

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	transactionStore store.TransactionStore
	accountStore     store.AccountStore
	transactor       store.Transactor
	logger           *slog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionStore store.TransactionStore,
	accountStore store.AccountStore,
	transactor store.Transactor,
	logger *slog.Logger,
) TransactionService {
	return &TransactionServiceImpl{
		transactionStore: transactionStore,
		accountStore:     accountStore,
		transactor:       transactor,
		logger:           logger.With("component", "transaction_service"),
	}
}

// CreateTransaction records a transaction and its balance effect atomically.
func (s *TransactionServiceImpl) CreateTransaction(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
	transactionType domain.TransactionType,
	description string,
) (*domain.Transaction, error) {
	// Construct and validate before any store access so non-positive
	// amounts and unknown types never reach the balance.
	transaction, err := domain.NewTransaction(accountID, amount, transactionType, description)
	if err != nil {
		s.logger.Debug("rejected invalid transaction",
			"error", err,
			"account_id", accountID)
		return nil, err
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txAccounts := s.accountStore.WithTx(tx)
		txTransactions := s.transactionStore.WithTx(tx)

		account, err := txAccounts.GetByID(ctx, accountID)
		if err != nil {
			return err
		}

		newBalance, err := domain.ApplyToBalance(account.Balance, transaction.Amount, transaction.Type)
		if err != nil {
			return err
		}
		account.Balance = newBalance

		if err := txAccounts.Update(ctx, account); err != nil {
			return err
		}

		return txTransactions.Create(ctx, transaction)
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound):
			s.logger.Debug("attempted transaction against non-existent account",
				"account_id", accountID)
		case errors.Is(err, domain.ErrInsufficientFunds):
			s.logger.Debug("transaction rejected for insufficient funds",
				"account_id", accountID,
				"transaction_type", string(transactionType),
				"amount", amount.StringFixed(domain.MoneyScale))
		default:
			s.logger.Error("failed to create transaction",
				"error", err,
				"account_id", accountID)
		}
		return nil, err
	}

	s.logger.Info("transaction recorded successfully",
		"transaction_id", transaction.ID,
		"account_id", accountID,
		"transaction_type", string(transaction.Type),
		"amount", transaction.Amount.StringFixed(domain.MoneyScale))
	return transaction, nil
}

// GetTransaction retrieves a transaction by its ID
func (s *TransactionServiceImpl) GetTransaction(
	ctx context.Context,
	transactionID uuid.UUID,
) (*domain.Transaction, error) {
	transaction, err := s.transactionStore.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			s.logger.Debug("transaction not found", "transaction_id", transactionID)
		} else {
			s.logger.Error("failed to retrieve transaction",
				"error", err,
				"transaction_id", transactionID)
		}
		return nil, err
	}

	return transaction, nil
}

// ListTransactions retrieves all transactions
func (s *TransactionServiceImpl) ListTransactions(
	ctx context.Context,
) ([]*domain.Transaction, error) {
	transactions, err := s.transactionStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}
	return transactions, nil
}

// ListTransactionsByAccount returns the statement view for an account.
// The account must exist; an empty slice is returned when it has no
// transactions.
func (s *TransactionServiceImpl) ListTransactionsByAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]*domain.Transaction, error) {
	if _, err := s.accountStore.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("account not found for transaction listing",
				"account_id", accountID)
		} else {
			s.logger.Error("failed to retrieve account for transaction listing",
				"error", err,
				"account_id", accountID)
		}
		return nil, err
	}

	transactions, err := s.transactionStore.ListByAccountID(ctx, accountID)
	if err != nil {
		s.logger.Error("failed to list transactions by account",
			"error", err,
			"account_id", accountID)
		return nil, err
	}

	return transactions, nil
}

// DeleteTransaction removes a transaction row without reversing its
// balance effect. Uses a transaction to ensure atomicity of the operation.
func (s *TransactionServiceImpl) DeleteTransaction(
	ctx context.Context,
	transactionID uuid.UUID,
) error {
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.transactionStore.WithTx(tx).Delete(ctx, transactionID)
	})

	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			s.logger.Debug("attempted to delete non-existent transaction",
				"transaction_id", transactionID)
		} else {
			s.logger.Error("failed to delete transaction",
				"error", err,
				"transaction_id", transactionID)
		}
		return err
	}

	s.logger.Info("transaction deleted successfully", "transaction_id", transactionID)
	return nil
}
