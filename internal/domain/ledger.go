package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds is returned when a debiting transaction exceeds
// the current account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ApplyToBalance returns the balance that results from recording a
// transaction of the given amount and type against the current balance.
// It is a pure function: the caller persists the result.
//
// DEPOSIT credits the balance. WITHDRAWAL, PAYMENT and TRANSFER debit it
// and fail with ErrInsufficientFunds when the balance is smaller than the
// amount. TRANSFER debits the source account only; there is no
// counterparty credit.
//
// The amount must be strictly positive; ErrNonPositiveAmount is returned
// before any arithmetic otherwise. All arithmetic is exact decimal at
// MoneyScale.
func ApplyToBalance(
	balance, amount decimal.Decimal,
	transactionType TransactionType,
) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return balance, err
	}

	balance = balance.Round(MoneyScale)
	amount = amount.Round(MoneyScale)

	switch transactionType {
	case TransactionTypeDeposit:
		return balance.Add(amount), nil
	case TransactionTypeWithdrawal, TransactionTypePayment, TransactionTypeTransfer:
		if balance.Cmp(amount) < 0 {
			return balance, ErrInsufficientFunds
		}
		return balance.Sub(amount), nil
	default:
		return balance, ErrInvalidTransactionType
	}
}
