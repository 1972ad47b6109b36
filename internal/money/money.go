// Package money holds the exact two-decimal amount type used for purchase costs.
//
// Amounts are decimal values rounded to cents when constructed, so repeated
// additions never drift the way binary floats do.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an input cannot be read as a finite real number.
var ErrInvalidAmount = errors.New("invalid amount")

const places = 2

// Money is a signed amount with cent precision. The zero value is $0.00.
type Money struct {
	d decimal.Decimal
}

// Zero returns $0.00.
func Zero() Money { return Money{} }

// FromCents builds an amount from an integer number of cents.
func FromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -places)}
}

// FromFloat rounds f to the nearest cent.
func FromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return Money{d: decimal.NewFromFloat(f).Round(places)}, nil
}

// Parse reads a plain decimal string such as "12.5", "-3" or "0.99".
// Surrounding whitespace is ignored; anything else that is not a finite
// number fails with ErrInvalidAmount.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{d: d.Round(places)}, nil
}

// MustParse is Parse for literals in tests and defaults.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns a + b.
func Add(a, b Money) Money { return a.Add(b) }

// Add returns m + o.
func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

// Equal reports whether both amounts hold the same value.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// Sign returns -1, 0 or +1.
func (m Money) Sign() int { return m.d.Sign() }

// IsZero reports whether m is $0.00.
func (m Money) IsZero() bool { return m.d.IsZero() }

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 { return m.d.Shift(places).IntPart() }

// Float64 is for display arithmetic only.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String renders the canonical display form, "$" followed by two decimals.
func (m Money) String() string { return "$" + m.d.StringFixed(places) }

// Plain renders the amount with two decimals and no currency symbol.
func (m Money) Plain() string { return m.d.StringFixed(places) }

// Whole renders "$" and the amount rounded to whole dollars, halves going
// to the even dollar.
func (m Money) Whole() string { return "$" + m.d.RoundBank(0).StringFixed(0) }
