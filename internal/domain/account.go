package domain

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of account.
type AccountType string

// Possible account types
const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Common validation errors for Account
var (
	ErrEmptyAccountID     = errors.New("account ID cannot be empty")
	ErrEmptyAccountNumber = errors.New("account number cannot be empty")
	ErrEmptyAccountUserID = errors.New("account user ID cannot be empty")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// accountNumberDigits is the length of generated account numbers.
const accountNumberDigits = 10

// Account is a balance-carrying account owned by exactly one user.
// The balance is only ever mutated by recording a transaction.
type Account struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"account_number"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Type      AccountType     `json:"account_type"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAccount creates a new Account for the given user with a generated
// account number. A zero balance and the CHECKING type are used as
// defaults when the caller passes the zero decimal or an empty type.
// Returns an error if validation fails.
func NewAccount(userID uuid.UUID, balance decimal.Decimal, accountType AccountType) (*Account, error) {
	if accountType == "" {
		accountType = AccountTypeChecking
	}

	account := &Account{
		ID:        uuid.New(),
		Number:    GenerateAccountNumber(),
		UserID:    userID,
		Balance:   balance.Round(MoneyScale),
		Type:      accountType,
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Number == "" {
		return ErrEmptyAccountNumber
	}

	if a.UserID == uuid.Nil {
		return ErrEmptyAccountUserID
	}

	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	if !isValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	return nil
}

// GenerateAccountNumber returns a random 10-digit account number.
// Uniqueness is enforced by the storage layer; callers retry on a
// duplicate-number error.
func GenerateAccountNumber() string {
	b := make([]byte, accountNumberDigits)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is effectively unrecoverable; fall back to
		// the timestamp so the number is still non-static.
		ns := time.Now().UnixNano()
		for i := range b {
			b[i] = byte(ns >> (i * 8))
		}
	}

	digits := make([]byte, accountNumberDigits)
	for i, v := range b {
		digits[i] = '0' + v%10
	}
	return string(digits)
}

// isValidAccountType checks if the given type is a valid AccountType.
func isValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}
