// Package report turns a budget snapshot into user-facing output. The budget
// model never formats text itself; everything printed goes through here.
package report

import (
	"slices"

	"fjacquet/budget-planner/internal/budget"

	"github.com/shopspring/decimal"
)

// Summary is a read-only snapshot of a model taken after a mutation.
type Summary struct {
	Budget     decimal.Decimal
	Allocated  decimal.Decimal
	Remaining  decimal.Decimal
	Categories []budget.Allocation // largest first
	Analysis   budget.Analysis
}

// NewSummary snapshots m.
func NewSummary(m *budget.Model) Summary {
	return Summary{
		Budget:     m.WeeklyBudget(),
		Allocated:  m.TotalAllocated(),
		Remaining:  m.Remaining(),
		Categories: slices.Collect(m.Breakdown()),
		Analysis:   m.UtilizationReport(),
	}
}

// HasCategories reports whether there is anything to break down. The
// analysis section is only shown once at least one category exists.
func (s Summary) HasCategories() bool {
	return len(s.Categories) > 0
}
