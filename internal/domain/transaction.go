package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies how a transaction affects its account balance.
type TransactionType string

// Possible transaction types
const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypePayment    TransactionType = "PAYMENT"
)

// maxDescriptionLength bounds the optional free-text description.
const maxDescriptionLength = 500

// Common validation errors for Transaction
var (
	ErrEmptyTransactionID        = errors.New("transaction ID cannot be empty")
	ErrEmptyTransactionAccountID = errors.New("transaction account ID cannot be empty")
	ErrInvalidTransactionType    = errors.New("invalid transaction type")
	ErrDescriptionTooLong        = errors.New("description cannot exceed 500 characters")
)

// Transaction records a single balance-affecting movement on an account.
// Transactions are immutable once created; deleting one does not reverse
// its balance effect.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"transaction_type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// NewTransaction creates a new Transaction against the given account.
// It generates a new UUID for the transaction ID and stamps the
// transaction date with the server clock.
// Returns an error if validation fails.
func NewTransaction(
	accountID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	description string,
) (*Transaction, error) {
	tx := &Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		Amount:          amount.Round(MoneyScale),
		Type:            transactionType,
		Description:     description,
		TransactionDate: time.Now().UTC(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate checks if the Transaction has valid data.
// Returns an error if any field fails validation.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTransactionID
	}

	if t.AccountID == uuid.Nil {
		return ErrEmptyTransactionAccountID
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if !isValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if len(t.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}

	return nil
}

// isValidTransactionType checks if the given type is a valid TransactionType.
func isValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal,
		TransactionTypeTransfer, TransactionTypePayment:
		return true
	default:
		return false
	}
}
