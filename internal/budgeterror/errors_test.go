package budgeterror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "invalid budget with input",
			err:      &InvalidBudgetError{Input: "abc"},
			expected: "please enter a valid budget amount greater than 0 (got 'abc')",
		},
		{
			name:     "invalid budget without input",
			err:      &InvalidBudgetError{},
			expected: "please enter a valid budget amount greater than 0",
		},
		{
			name:     "missing name",
			err:      &MissingNameError{},
			expected: "please enter a category name",
		},
		{
			name:     "invalid amount",
			err:      &InvalidAmountError{Category: "Produce", Input: "-5"},
			expected: "please enter a valid amount for 'Produce' (got '-5')",
		},
		{
			name: "budget exceeded",
			err: &BudgetExceededError{
				Category:  "B",
				Requested: decimal.NewFromInt(20),
				Remaining: decimal.NewFromInt(10),
			},
			expected: "allocating 20.00 to 'B' would exceed your budget: you have 10.00 remaining",
		},
		{
			name:     "division undefined",
			err:      &DivisionUndefinedError{Category: "Dairy"},
			expected: "cannot compute percentage for 'Dairy': weekly budget is not set",
		},
		{
			name:     "unknown command",
			err:      &UnknownCommandError{Command: "frobnicate"},
			expected: "unknown command 'frobnicate' (type 'help' for a list)",
		},
		{
			name:     "usage",
			err:      &UsageError{Command: "add", Usage: "add <name> <amount>"},
			expected: "add: usage: add <name> <amount>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBudgetExceededError_As(t *testing.T) {
	var err error = fmt.Errorf("add category: %w", &BudgetExceededError{
		Category:  "B",
		Requested: decimal.NewFromInt(20),
		Remaining: decimal.RequireFromString("10.00"),
	})

	var exceeded *BudgetExceededError
	assert.True(t, errors.As(err, &exceeded))
	assert.True(t, exceeded.Remaining.Equal(decimal.NewFromInt(10)))
}
