package models

import (
	"github.com/shopspring/decimal"
)

// Amount is a ledger amount that keeps the scale it was parsed with,
// so "100,00" is written back as "100.00" rather than "100".
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(value decimal.Decimal) *Amount {
	return &Amount{value: value}
}

// MustAmount parses s with decimal.NewFromString and panics on failure.
// It is intended for tests and constant tables.
func MustAmount(s string) *Amount {
	return NewAmount(decimal.RequireFromString(s))
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Equal compares the numeric values, ignoring scale.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String formats the amount with as many fractional digits as it was parsed with.
func (a Amount) String() string {
	if exp := a.value.Exponent(); exp < 0 {
		return a.value.StringFixed(-exp)
	}
	return a.value.String()
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}
