package report

import (
	"fmt"

	"fjacquet/budget-planner/internal/budget"

	"github.com/shopspring/decimal"
)

// Severity of an analysis message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Message is one line of the analysis section.
type Message struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Title    string   `json:"title" yaml:"title"`
	Detail   string   `json:"detail" yaml:"detail"`
}

// Messages explains an analysis: one message for the primary status and a
// second one when the categories are unbalanced.
func Messages(a budget.Analysis, currency string) []Message {
	money := func(d decimal.Decimal) string { return FormatMoney(d, currency) }

	var msgs []Message
	switch a.Status {
	case budget.StatusOverBudget:
		msgs = append(msgs, Message{
			Severity: SeverityError,
			Title:    "Over budget",
			Detail:   fmt.Sprintf("You've allocated %s more than your weekly budget.", money(a.Amount)),
		})
	case budget.StatusFullyAllocated:
		msgs = append(msgs, Message{
			Severity: SeveritySuccess,
			Title:    "Perfect planning",
			Detail:   "Your budget is fully allocated with no waste.",
		})
	case budget.StatusNearlyFull:
		msgs = append(msgs, Message{
			Severity: SeverityWarning,
			Title:    "Budget almost full",
			Detail:   fmt.Sprintf("You have %s remaining. Consider if you need to adjust allocations.", money(a.Amount)),
		})
	default:
		msgs = append(msgs, Message{
			Severity: SeveritySuccess,
			Title:    "Good budget allocation",
			Detail:   fmt.Sprintf("You have %s remaining for adjustments or additional categories.", money(a.Amount)),
		})
	}

	if a.Unbalanced {
		msgs = append(msgs, Message{
			Severity: SeverityWarning,
			Title:    "Unbalanced categories",
			Detail: fmt.Sprintf("Your highest category is more than %sx your lowest. Consider rebalancing.",
				a.BalanceRatio.String()),
		})
	}
	return msgs
}

// FormatMoney renders an amount with two decimals, the sign in front of the
// currency symbol.
func FormatMoney(d decimal.Decimal, currency string) string {
	if d.IsNegative() {
		return "-" + currency + d.Neg().StringFixed(2)
	}
	return currency + d.StringFixed(2)
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
