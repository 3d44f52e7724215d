package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Exponent bounds for parsed amounts. Decimal arithmetic rescales to the
// smaller exponent of its operands, so an input such as 1e-2000000000 would
// make every later sum allocate billions of digits.
const (
	MinAmountExponent = -8
	MaxAmountExponent = 15
)

// ParseAmount parses user input such as "40", "12.50" or "$ 7.25".
// Only the numeric syntax accepted by decimal is allowed, so NaN, Inf and
// trailing garbage are rejected, as are exponents outside
// [MinAmountExponent, MaxAmountExponent].
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "$"))
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	if exp := d.Exponent(); exp < MinAmountExponent || exp > MaxAmountExponent {
		return decimal.Zero, fmt.Errorf("amount '%s' is out of range", s)
	}
	return d, nil
}
