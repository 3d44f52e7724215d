package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Default analysis thresholds.
var (
	// DefaultNearlyFullRatio flags a budget as nearly full when less than
	// this share of it remains.
	DefaultNearlyFullRatio = decimal.RequireFromString("0.10")
	// DefaultBalanceRatio flags categories as unbalanced when the largest is
	// more than this many times the smallest.
	DefaultBalanceRatio = decimal.NewFromInt(3)
)

// OverwritePolicy decides how re-adding an existing category is checked
// against the budget ceiling.
type OverwritePolicy string

const (
	// OverwriteLegacy checks total+amount, still counting the value being replaced.
	OverwriteLegacy OverwritePolicy = "legacy"
	// OverwriteRevalidate treats a re-add as an update and checks total-old+amount.
	OverwriteRevalidate OverwritePolicy = "revalidate"
)

// ParseOverwritePolicy converts a configuration value into a policy.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch OverwritePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OverwriteLegacy:
		return OverwriteLegacy, nil
	case OverwriteRevalidate:
		return OverwriteRevalidate, nil
	default:
		return "", fmt.Errorf("unknown overwrite policy '%s' (must be 'legacy' or 'revalidate')", s)
	}
}

// Option configures a Model.
type Option func(*Model)

// WithNearlyFullRatio overrides DefaultNearlyFullRatio.
func WithNearlyFullRatio(ratio decimal.Decimal) Option {
	return func(m *Model) {
		m.nearlyFullRatio = ratio
	}
}

// WithBalanceRatio overrides DefaultBalanceRatio.
func WithBalanceRatio(ratio decimal.Decimal) Option {
	return func(m *Model) {
		m.balanceRatio = ratio
	}
}

// WithOverwritePolicy selects how re-added categories are validated.
func WithOverwritePolicy(p OverwritePolicy) Option {
	return func(m *Model) {
		m.overwrite = p
	}
}
