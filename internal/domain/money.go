package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fixed number of fractional digits for all monetary
// values. Amounts and balances are rounded to this scale before any
// comparison or arithmetic, never represented as binary floating point.
const MoneyScale = 2

// ErrNonPositiveAmount is returned when a monetary amount is zero or
// negative where a strictly positive value is required.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// ValidateAmount checks that the amount is strictly positive.
// Returns ErrNonPositiveAmount otherwise.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}
