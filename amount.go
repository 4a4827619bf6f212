package wallet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts free-form user input (a form field, a CLI argument)
// into a decimal amount. It accepts an optional leading currency symbol and
// thousands separators, so "1,200.50" and "$40" both parse.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeft(cleaned, "$₹")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return v, nil
}

// parsePositiveAmount is the validation shared by deposit, withdraw and
// transfer: the input must be numeric and strictly positive.
func parsePositiveAmount(s string) (decimal.Decimal, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, v)
	}
	return v, nil
}
