// Package budgeterror defines the error types returned when a budget
// operation is rejected. Every error leaves the budget state unchanged.
package budgeterror

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidBudgetError is returned when the weekly budget is not a positive number.
type InvalidBudgetError struct {
	Input string
}

func (e *InvalidBudgetError) Error() string {
	if e.Input == "" {
		return "please enter a valid budget amount greater than 0"
	}
	return fmt.Sprintf("please enter a valid budget amount greater than 0 (got '%s')", e.Input)
}

// MissingNameError is returned when a category name is empty after trimming.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "please enter a category name"
}

// InvalidAmountError is returned when a category amount is not a non-negative number.
type InvalidAmountError struct {
	Category string
	Input    string
}

func (e *InvalidAmountError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("please enter a valid amount for '%s'", e.Category)
	}
	return fmt.Sprintf("please enter a valid amount for '%s' (got '%s')", e.Category, e.Input)
}

// BudgetExceededError is returned when an allocation would push the total
// over the weekly budget. Remaining is what was left before the attempt.
type BudgetExceededError struct {
	Category  string
	Requested decimal.Decimal
	Remaining decimal.Decimal
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("allocating %s to '%s' would exceed your budget: you have %s remaining",
		e.Requested.StringFixed(2), e.Category, e.Remaining.StringFixed(2))
}

// DivisionUndefinedError is returned when a percentage is requested before
// a weekly budget has been set.
type DivisionUndefinedError struct {
	Category string
}

func (e *DivisionUndefinedError) Error() string {
	return fmt.Sprintf("cannot compute percentage for '%s': weekly budget is not set", e.Category)
}

// UnknownCategoryError is returned when a lookup names a category that does not exist.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category '%s'", e.Category)
}

// BudgetNotSetError is returned by the planner when category commands arrive
// before a weekly budget exists.
type BudgetNotSetError struct {
	Command string
}

func (e *BudgetNotSetError) Error() string {
	return fmt.Sprintf("%s: set a weekly budget first", e.Command)
}

// UnknownCommandError represents an input line the planner cannot dispatch.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s' (type 'help' for a list)", e.Command)
}

// UsageError represents a known command called with the wrong arguments.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: usage: %s", e.Command, e.Usage)
}
