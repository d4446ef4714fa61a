package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits carried by every Money value.
const moneyScale = 2

// Money is a value object representing a monetary amount with fixed-point
// precision of two fractional digits. It is backed by decimal arithmetic so
// that repeated additions and multiplications never accumulate binary
// floating-point drift: recomputing the same sum always yields the same value.
//
// The zero value of Money is a valid amount of 0.00, which lets aggregates
// start from zero and accumulate. Money is immutable; arithmetic methods
// return new values.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("29.99")
//	if err != nil {
//	    // handle error
//	}
//	subtotal := price.MulInt(2) // 59.98
type Money struct {
	amount decimal.Decimal
}

// MoneyFromString parses a decimal string such as "29.99" into a Money value.
// The parsed amount is rounded to two fractional digits.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money format: %w", err)
	}
	return MoneyFromDecimal(d), nil
}

// MoneyFromDecimal creates a Money value from a decimal, rounding to two
// fractional digits. This is the constructor used when scanning database
// columns of type numeric(…,2).
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyScale)}
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor,
// rounded to two fractional digits.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))).Round(moneyScale)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits, e.g. "149.97".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m is strictly larger than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}
