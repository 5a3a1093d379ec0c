// Package currencyutils parses locale-ambiguous amount strings into exact decimals
// and splits signed amounts into ledger outflow/inflow pairs.
package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"o2y/internal/models"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by ParseAmount for blank input.
var ErrEmptyAmount = errors.New("empty amount")

// ParseAmount parses a string that may use either American ("2,700.12") or
// German ("2.700,12") grouping into an exact decimal.
//
// When both separators appear, the one that occurs later is the decimal
// separator and every occurrence of the other is dropped. A lone comma is
// always a decimal comma, so "1,234" parses as 1.234.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount rewrites amountStr into the form accepted by decimal.NewFromString.
// It does not validate the result.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	dot := strings.Index(amountStr, ".")
	comma := strings.Index(amountStr, ",")
	if dot >= 0 && comma >= 0 {
		if comma > dot {
			// German: 2.700,12
			amountStr = strings.ReplaceAll(amountStr, ".", "")
		} else {
			// American: 2,700.12
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return strings.ReplaceAll(amountStr, ",", ".")
}

// SplitAmount turns a signed amount into an (outflow, inflow) pair. Negative
// values become an outflow of their absolute value; everything else, zero
// included, is an inflow. Exactly one of the results is non-nil.
func SplitAmount(amount decimal.Decimal) (outflow, inflow *models.Amount) {
	if amount.IsNegative() {
		return models.NewAmount(amount.Abs()), nil
	}
	return nil, models.NewAmount(amount)
}
