package planner

import (
	"errors"
	"testing"

	"fjacquet/budget-planner/internal/budgeterror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{line: "budget 100", expected: Command{Kind: SetBudget, Amount: "100"}},
		{line: "  SET $75.50 ", expected: Command{Kind: SetBudget, Amount: "$75.50"}},
		{line: "add Produce 40", expected: Command{Kind: AddCategory, Name: "Produce", Amount: "40"}},
		{line: "add Fresh produce 12.5", expected: Command{Kind: AddCategory, Name: "Fresh produce", Amount: "12.5"}},
		{line: "remove Fresh produce", expected: Command{Kind: RemoveCategory, Name: "Fresh produce"}},
		{line: "rm Dairy", expected: Command{Kind: RemoveCategory, Name: "Dairy"}},
		{line: "new", expected: Command{Kind: Reset}},
		{line: "show", expected: Command{Kind: Summary}},
		{line: "?", expected: Command{Kind: Help}},
		{line: "Quit", expected: Command{Kind: Done}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment"} {
		_, err := ParseCommand(line)
		assert.ErrorIs(t, err, ErrEmptyLine)
	}

	_, err := ParseCommand("frobnicate 3")
	var unknown *budgeterror.UnknownCommandError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "frobnicate", unknown.Command)

	for _, line := range []string{"budget", "budget 1 2", "add Produce", "remove", "reset now"} {
		_, err := ParseCommand(line)
		var usage *budgeterror.UsageError
		assert.True(t, errors.As(err, &usage), line)
	}
}

func TestCommand_Mutates(t *testing.T) {
	assert.True(t, Command{Kind: SetBudget}.Mutates())
	assert.True(t, Command{Kind: Reset}.Mutates())
	assert.False(t, Command{Kind: Summary}.Mutates())
	assert.False(t, Command{Kind: Done}.Mutates())
}
