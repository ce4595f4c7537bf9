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

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AccountStore.Create
// Returns store.ErrAccountNumberExists if the generated number collides and
// store.ErrInvalidEntity if the owning user does not exist (foreign key violation).
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, number, user_id, balance, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Number,
		account.UserID,
		account.Balance,
		account.Type,
		account.CreatedAt,
	)

	if err != nil {
		mapped := MapError(err)
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during account creation",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()),
				slog.String("user_id", account.UserID.String()))
		} else if IsUniqueViolation(err) {
			log.Warn("unique violation during account creation",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
		} else {
			log.Error("failed to create account",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
		}
		return mapped
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("user_id", account.UserID.String()),
		slog.String("account_type", string(account.Type)))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, number, user_id, balance, account_type, created_at
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("account_id", id.String()))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return nil, err
	}

	return account, nil
}

// List implements store.AccountStore.List
func (s *PostgresAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT id, number, user_id, balance, account_type, created_at
		FROM accounts
		ORDER BY created_at
	`
	return s.queryAccounts(ctx, query)
}

// ListByUserID implements store.AccountStore.ListByUserID
// Returns an empty slice when the user owns no accounts.
func (s *PostgresAccountStore) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Account, error) {
	query := `
		SELECT id, number, user_id, balance, account_type, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at
	`
	return s.queryAccounts(ctx, query, userID)
}

// Update implements store.AccountStore.Update
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		UPDATE accounts
		SET balance = $1, account_type = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		account.Balance,
		account.Type,
		account.ID,
	)

	if err != nil {
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("account not found for update",
			slog.String("account_id", account.ID.String()))
		return store.ErrAccountNotFound
	}

	log.Info("account updated successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("balance", account.Balance.StringFixed(domain.MoneyScale)))
	return nil
}

// Delete implements store.AccountStore.Delete
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM accounts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("account not found for delete", slog.String("account_id", id.String()))
		return store.ErrAccountNotFound
	}

	log.Info("account deleted successfully", slog.String("account_id", id.String()))
	return nil
}

// queryAccounts runs an account query and scans all rows.
func (s *PostgresAccountStore) queryAccounts(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query accounts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if accounts == nil {
		accounts = []*domain.Account{}
	}

	return accounts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount scans a single account row in column order.
func scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var accountType string

	err := row.Scan(
		&account.ID,
		&account.Number,
		&account.UserID,
		&account.Balance,
		&accountType,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Type = domain.AccountType(accountType)
	return &account, nil
}
