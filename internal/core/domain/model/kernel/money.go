package kernel

import (
	"errors"
	"fmt"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every amount.
const Scale = 2

var (
	// MaxPrice is the largest price a menu item may carry (numeric(6,2)).
	MaxPrice = decimal.RequireFromString("9999.99")
	// MinPrice is the smallest positive price.
	MinPrice = decimal.New(1, -Scale)
	// MaxTotal is the largest order total the numeric(14,2) column holds.
	MaxTotal = decimal.RequireFromString("999999999999.99")

	ErrMoneyIsNegative = errors.New("amount must not be negative")
)

// Money is an immutable amount of the single house currency.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney builds a non-negative amount rounded to Scale digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", ErrMoneyIsNegative)
	}
	return Money{amount: amount.Round(Scale)}, nil
}

// NewPrice validates a catalog price: positive, at most 9999.99 and no more than
// two fractional digits.
func NewPrice(amount decimal.Decimal) (Money, error) {
	if amount.LessThan(MinPrice) || amount.GreaterThan(MaxPrice) {
		return Money{}, errs.NewValueIsOutOfRangeError("price", amount.String(), MinPrice.String(), MaxPrice.String())
	}
	if !amount.Equal(amount.Truncate(Scale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), Scale),
		)
	}
	return Money{amount: amount}, nil
}

// Decimal exposes the underlying amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Mul returns the amount multiplied by quantity.
func (m Money) Mul(quantity Quantity) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity.Int())))}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// GreaterThan reports whether m is strictly larger than amount.
func (m Money) GreaterThan(amount decimal.Decimal) bool {
	return m.amount.GreaterThan(amount)
}

// IsEqual compares amounts numerically, so 18 equals 18.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}
