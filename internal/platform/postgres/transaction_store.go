package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lelec0/fintech-api/internal/domain"
	"github.com/lelec0/fintech-api/internal/platform/logger"
	"github.com/lelec0/fintech-api/internal/store"
)

// PostgresTransactionStore implements the store.TransactionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTransactionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTransactionStore creates a new PostgreSQL implementation of the TransactionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTransactionStore(db store.DBTX, logger *slog.Logger) *PostgresTransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTransactionStore{
		db:     db,
		logger: logger.With(slog.String("component", "transaction_store")),
	}
}

// Ensure PostgresTransactionStore implements store.TransactionStore interface
var _ store.TransactionStore = (*PostgresTransactionStore)(nil)

// WithTx implements store.TransactionStore.WithTx
func (s *PostgresTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return &PostgresTransactionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TransactionStore.Create
// Returns store.ErrInvalidEntity if the referenced account does not exist
// (foreign key violation).
func (s *PostgresTransactionStore) Create(ctx context.Context, transaction *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := transaction.Validate(); err != nil {
		log.Warn("transaction validation failed during create",
			slog.String("error", err.Error()),
			slog.String("transaction_id", transaction.ID.String()))
		return err
	}

	query := `
		INSERT INTO transactions (id, account_id, amount, transaction_type, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.AccountID,
		transaction.Amount,
		transaction.Type,
		transaction.Description,
		transaction.TransactionDate,
	)

	if err != nil {
		mapped := MapError(err)
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during transaction creation",
				slog.String("error", err.Error()),
				slog.String("transaction_id", transaction.ID.String()),
				slog.String("account_id", transaction.AccountID.String()))
		} else {
			log.Error("failed to create transaction",
				slog.String("error", err.Error()),
				slog.String("transaction_id", transaction.ID.String()))
		}
		return mapped
	}

	log.Info("transaction created successfully",
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("account_id", transaction.AccountID.String()),
		slog.String("transaction_type", string(transaction.Type)),
		slog.String("amount", transaction.Amount.StringFixed(domain.MoneyScale)))
	return nil
}

// GetByID implements store.TransactionStore.GetByID
// Returns store.ErrTransactionNotFound if the transaction does not exist.
func (s *PostgresTransactionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, account_id, amount, transaction_type, description, transaction_date
		FROM transactions
		WHERE id = $1
	`

	transaction, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("transaction not found", slog.String("transaction_id", id.String()))
			return nil, store.ErrTransactionNotFound
		}
		log.Error("failed to get transaction by ID",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, err
	}

	return transaction, nil
}

// List implements store.TransactionStore.List
func (s *PostgresTransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT id, account_id, amount, transaction_type, description, transaction_date
		FROM transactions
		ORDER BY transaction_date DESC
	`
	return s.queryTransactions(ctx, query)
}

// ListByAccountID implements store.TransactionStore.ListByAccountID
// Transactions are returned newest first, acting as a statement view.
func (s *PostgresTransactionStore) ListByAccountID(
	ctx context.Context,
	accountID uuid.UUID,
) ([]*domain.Transaction, error) {
	query := `
		SELECT id, account_id, amount, transaction_type, description, transaction_date
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date DESC
	`
	return s.queryTransactions(ctx, query, accountID)
}

// Delete implements store.TransactionStore.Delete
// The balance effect of the deleted transaction is not reversed.
// Returns store.ErrTransactionNotFound if the transaction does not exist.
func (s *PostgresTransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM transactions WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("transaction not found for delete",
			slog.String("transaction_id", id.String()))
		return store.ErrTransactionNotFound
	}

	log.Info("transaction deleted successfully", slog.String("transaction_id", id.String()))
	return nil
}

// queryTransactions runs a transaction query and scans all rows.
func (s *PostgresTransactionStore) queryTransactions(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query transactions", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			log.Error("failed to scan transaction row", slog.String("error", err.Error()))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return transactions, nil
}

// scanTransaction scans a single transaction row in column order.
func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var transactionType string
	var description sql.NullString

	err := row.Scan(
		&transaction.ID,
		&transaction.AccountID,
		&transaction.Amount,
		&transactionType,
		&description,
		&transaction.TransactionDate,
	)
	if err != nil {
		return nil, err
	}

	transaction.Type = domain.TransactionType(transactionType)
	transaction.Description = description.String
	return &transaction, nil
}
