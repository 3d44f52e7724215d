// Package budget holds the weekly budget model: a budget amount, a set of
// named category allocations and the rules that validate and analyse them.
//
// A Model is not safe for concurrent use. It is owned by a single planning
// session and mutated synchronously, one command at a time.
package budget

import (
	"iter"
	"slices"
	"strings"

	"fjacquet/budget-planner/internal/budgeterror"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Allocation is one category of the weekly budget.
type Allocation struct {
	Name       string          `json:"name" yaml:"name"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	Percentage decimal.Decimal `json:"percentage" yaml:"percentage"`
}

type entry struct {
	name   string
	amount decimal.Decimal
}

// Model is the weekly budget and its category allocations.
type Model struct {
	weeklyBudget decimal.Decimal
	entries      []entry
	index        map[string]int

	nearlyFullRatio decimal.Decimal
	balanceRatio    decimal.Decimal
	overwrite       OverwritePolicy
}

// New returns an empty model with no budget set.
func New(opts ...Option) *Model {
	m := &Model{
		weeklyBudget:    decimal.Zero,
		index:           make(map[string]int),
		nearlyFullRatio: DefaultNearlyFullRatio,
		balanceRatio:    DefaultBalanceRatio,
		overwrite:       OverwriteLegacy,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetBudget stores the weekly budget. The amount must be greater than zero.
// Existing allocations are kept and are not re-validated.
func (m *Model) SetBudget(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &budgeterror.InvalidBudgetError{Input: amount.String()}
	}
	m.weeklyBudget = amount
	return nil
}

// AddCategory allocates amount to the named category. The name is trimmed.
// Checks run in order: missing name, negative amount, budget ceiling.
func (m *Model) AddCategory(name string, amount decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &budgeterror.MissingNameError{}
	}
	if amount.IsNegative() {
		return &budgeterror.InvalidAmountError{Category: name, Input: amount.String()}
	}

	total := m.TotalAllocated()
	committed := total
	i, exists := m.index[name]
	if exists && m.overwrite == OverwriteRevalidate {
		committed = total.Sub(m.entries[i].amount)
	}
	if committed.Add(amount).GreaterThan(m.weeklyBudget) {
		return &budgeterror.BudgetExceededError{
			Category:  name,
			Requested: amount,
			Remaining: m.weeklyBudget.Sub(committed),
		}
	}

	if exists {
		m.entries[i].amount = amount
		return nil
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, entry{name: name, amount: amount})
	return nil
}

// RemoveCategory deletes the named category. Removing an absent name is a
// no-op; the return value reports whether anything was removed.
func (m *Model) RemoveCategory(name string) bool {
	i, ok := m.index[name]
	if !ok {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	delete(m.index, name)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].name] = j
	}
	return true
}

// Reset returns the model to its initial empty state.
func (m *Model) Reset() {
	m.weeklyBudget = decimal.Zero
	m.entries = nil
	m.index = make(map[string]int)
}

// WeeklyBudget returns the budget, zero when unset.
func (m *Model) WeeklyBudget() decimal.Decimal {
	return m.weeklyBudget
}

// IsSet reports whether a weekly budget has been set.
func (m *Model) IsSet() bool {
	return m.weeklyBudget.IsPositive()
}

// Len returns the number of categories.
func (m *Model) Len() int {
	return len(m.entries)
}

// Amount returns the amount allocated to name.
func (m *Model) Amount(name string) (decimal.Decimal, bool) {
	i, ok := m.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return m.entries[i].amount, true
}

// Categories returns the allocations in insertion order.
func (m *Model) Categories() []Allocation {
	out := make([]Allocation, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, m.allocation(e))
	}
	return out
}

// TotalAllocated returns the sum of all category amounts.
func (m *Model) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, e := range m.entries {
		total = total.Add(e.amount)
	}
	return total
}

// Remaining returns the budget minus the total allocated. It can be
// negative when the budget was lowered after allocating.
func (m *Model) Remaining() decimal.Decimal {
	return m.weeklyBudget.Sub(m.TotalAllocated())
}

// CategoryPercentage returns the share of the budget allocated to name,
// rounded to one decimal place.
func (m *Model) CategoryPercentage(name string) (decimal.Decimal, error) {
	if !m.IsSet() {
		return decimal.Zero, &budgeterror.DivisionUndefinedError{Category: name}
	}
	amount, ok := m.Amount(name)
	if !ok {
		return decimal.Zero, &budgeterror.UnknownCategoryError{Category: name}
	}
	return m.percentOf(amount), nil
}

// Breakdown returns the categories ordered by amount, largest first. Equal
// amounts keep their insertion order. The sequence is a snapshot of the
// model at call time and can be ranged over any number of times.
func (m *Model) Breakdown() iter.Seq[Allocation] {
	sorted := m.Categories()
	slices.SortStableFunc(sorted, func(a, b Allocation) int {
		return b.Amount.Cmp(a.Amount)
	})
	return func(yield func(Allocation) bool) {
		for _, a := range sorted {
			if !yield(a) {
				return
			}
		}
	}
}

func (m *Model) allocation(e entry) Allocation {
	return Allocation{
		Name:       e.name,
		Amount:     e.amount,
		Percentage: m.percentOf(e.amount),
	}
}

// percentOf is zero while the budget is unset.
func (m *Model) percentOf(amount decimal.Decimal) decimal.Decimal {
	if !m.IsSet() {
		return decimal.Zero
	}
	return amount.Div(m.weeklyBudget).Mul(hundred).Round(1)
}
