// Package calculator holds the exact-decimal tip and pay helpers exposed by
// the CLI and the /api/calc endpoints. Unlike the distribution engine, which
// accumulates in float and rounds for display, these round half-up to cents.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeInput rejects negative amounts, percents, hours or rates.
var ErrNegativeInput = errors.New("inputs must be non-negative")

var hundred = decimal.NewFromInt(100)

// Tip returns the tip for amount at percent, rounded half-up to cents.
func Tip(amount, percent decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() || percent.IsNegative() {
		return decimal.Zero, ErrNegativeInput
	}
	return amount.Mul(percent).Div(hundred).Round(2), nil
}

// Total returns amount plus its tip, rounded half-up to cents.
func Total(amount, percent decimal.Decimal) (decimal.Decimal, error) {
	tip, err := Tip(amount, percent)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Add(tip).Round(2), nil
}

// Pay returns gross pay for hours at an hourly rate, rounded half-up to cents.
func Pay(hours, rate decimal.Decimal) (decimal.Decimal, error) {
	if hours.IsNegative() || rate.IsNegative() {
		return decimal.Zero, ErrNegativeInput
	}
	return hours.Mul(rate).Round(2), nil
}
