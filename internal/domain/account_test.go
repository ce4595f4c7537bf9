package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewAccount(t *testing.T) {
	userID := uuid.New()
	balance := decimal.RequireFromString("5000.00")

	account, err := NewAccount(userID, balance, AccountTypeChecking)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if account.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, account.UserID)
	}

	if !account.Balance.Equal(balance) {
		t.Errorf("Expected balance %s, got %s", balance, account.Balance)
	}

	if account.Type != AccountTypeChecking {
		t.Errorf("Expected account type CHECKING, got %s", account.Type)
	}

	if len(account.Number) != accountNumberDigits {
		t.Errorf("Expected %d-digit account number, got %q", accountNumberDigits, account.Number)
	}

	if account.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestNewAccountDefaults(t *testing.T) {
	// Empty type defaults to CHECKING, zero balance is allowed
	account, err := NewAccount(uuid.New(), decimal.Zero, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Type != AccountTypeChecking {
		t.Errorf("Expected default account type CHECKING, got %s", account.Type)
	}

	if !account.Balance.IsZero() {
		t.Errorf("Expected zero balance, got %s", account.Balance)
	}
}

func TestNewAccountErrors(t *testing.T) {
	// Missing owner
	_, err := NewAccount(uuid.Nil, decimal.Zero, AccountTypeChecking)
	if !errors.Is(err, ErrEmptyAccountUserID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyAccountUserID, err)
	}

	// Negative opening balance
	_, err = NewAccount(uuid.New(), decimal.RequireFromString("-1.00"), AccountTypeChecking)
	if !errors.Is(err, ErrNegativeBalance) {
		t.Errorf("Expected error %v, got %v", ErrNegativeBalance, err)
	}

	// Unknown type
	_, err = NewAccount(uuid.New(), decimal.Zero, AccountType("CREDIT"))
	if !errors.Is(err, ErrInvalidAccountType) {
		t.Errorf("Expected error %v, got %v", ErrInvalidAccountType, err)
	}
}

func TestNewAccountRoundsBalance(t *testing.T) {
	account, err := NewAccount(uuid.New(), decimal.RequireFromString("100.005"), AccountTypeSavings)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := decimal.RequireFromString("100.01")
	if !account.Balance.Equal(expected) {
		t.Errorf("Expected balance rounded to %s, got %s", expected, account.Balance)
	}
}

func TestAccountValidate(t *testing.T) {
	validAccount := Account{
		ID:      uuid.New(),
		Number:  "1234567890",
		UserID:  uuid.New(),
		Balance: decimal.RequireFromString("100.00"),
		Type:    AccountTypeSavings,
	}

	if err := validAccount.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidAccount := validAccount
	invalidAccount.ID = uuid.Nil
	if err := invalidAccount.Validate(); !errors.Is(err, ErrEmptyAccountID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyAccountID, err)
	}

	invalidAccount = validAccount
	invalidAccount.Number = ""
	if err := invalidAccount.Validate(); !errors.Is(err, ErrEmptyAccountNumber) {
		t.Errorf("Expected error %v, got %v", ErrEmptyAccountNumber, err)
	}

	invalidAccount = validAccount
	invalidAccount.Balance = decimal.RequireFromString("-0.01")
	if err := invalidAccount.Validate(); !errors.Is(err, ErrNegativeBalance) {
		t.Errorf("Expected error %v, got %v", ErrNegativeBalance, err)
	}
}

func TestGenerateAccountNumber(t *testing.T) {
	number := GenerateAccountNumber()

	if len(number) != accountNumberDigits {
		t.Fatalf("Expected %d digits, got %q", accountNumberDigits, number)
	}

	for _, c := range number {
		if c < '0' || c > '9' {
			t.Fatalf("Expected only digits, got %q", number)
		}
	}

	// Consecutive numbers should differ with overwhelming probability
	if number == GenerateAccountNumber() && number == GenerateAccountNumber() {
		t.Error("Expected generated account numbers to vary")
	}
}
