package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the primary classification of a budget allocation.
type Status int

const (
	StatusHealthy Status = iota
	StatusNearlyFull
	StatusFullyAllocated
	StatusOverBudget
)

var statusNames = map[Status]string{
	StatusHealthy:        "healthy",
	StatusNearlyFull:     "nearly_full",
	StatusFullyAllocated: "fully_allocated",
	StatusOverBudget:     "over_budget",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText renders the status by name in JSON and YAML output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Analysis is the result of UtilizationReport.
type Analysis struct {
	Status Status `json:"status" yaml:"status"`
	// Amount is the excess for StatusOverBudget and the remaining budget
	// otherwise.
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Budget      decimal.Decimal `json:"budget" yaml:"budget"`
	Allocated   decimal.Decimal `json:"allocated" yaml:"allocated"`
	Remaining   decimal.Decimal `json:"remaining" yaml:"remaining"`
	Utilization decimal.Decimal `json:"utilization" yaml:"utilization"`

	Unbalanced   bool            `json:"unbalanced" yaml:"unbalanced"`
	BalanceRatio decimal.Decimal `json:"balance_ratio" yaml:"balance_ratio"`
	MaxAmount    decimal.Decimal `json:"max_amount" yaml:"max_amount"`
	MinAmount    decimal.Decimal `json:"min_amount" yaml:"min_amount"`
}

// UtilizationReport classifies the current allocation. The primary status
// is the first match of: over budget, fully allocated, nearly full, healthy.
// The Unbalanced flag is evaluated independently.
func (m *Model) UtilizationReport() Analysis {
	allocated := m.TotalAllocated()
	remaining := m.weeklyBudget.Sub(allocated)

	a := Analysis{
		Budget:       m.weeklyBudget,
		Allocated:    allocated,
		Remaining:    remaining,
		Utilization:  m.percentOf(allocated),
		BalanceRatio: m.balanceRatio,
	}

	switch {
	case remaining.IsNegative():
		a.Status = StatusOverBudget
		a.Amount = remaining.Neg()
	case remaining.IsZero():
		a.Status = StatusFullyAllocated
		a.Amount = decimal.Zero
	case remaining.LessThan(m.weeklyBudget.Mul(m.nearlyFullRatio)):
		a.Status = StatusNearlyFull
		a.Amount = remaining
	default:
		a.Status = StatusHealthy
		a.Amount = remaining
	}

	if len(m.entries) > 0 {
		amounts := make([]decimal.Decimal, 0, len(m.entries))
		for _, e := range m.entries {
			amounts = append(amounts, e.amount)
		}
		a.MaxAmount = decimal.Max(amounts[0], amounts[1:]...)
		a.MinAmount = decimal.Min(amounts[0], amounts[1:]...)
		a.Unbalanced = len(amounts) > 1 && a.MaxAmount.GreaterThan(a.MinAmount.Mul(m.balanceRatio))
	}

	return a
}
