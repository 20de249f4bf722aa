package kernel

import (
	"fmt"

	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via ZeroMoney, NewMoney, or MoneyFromString",
)

// Money is a value object representing a non-negative monetary amount with
// exact decimal arithmetic. It is used for variation prices and order totals,
// where floating-point rounding drift is not acceptable.
//
// Money is immutable: arithmetic methods return new values.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("10.00")
//	if err != nil {
//	    // handle error
//	}
//	total := kernel.ZeroMoney().Add(price.MulInt(2)) // 20.00
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// ZeroMoney returns a constructed zero amount, the additive identity for totals.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "10.00" into a Money value.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "15.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two Money values by numeric amount, so "10" equals "10.00".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
