// Package planner drives a budget.Model from discrete user commands. Each
// command runs to completion before the next one is read.
package planner

import (
	"errors"
	"strings"

	"fjacquet/budget-planner/internal/budgeterror"
)

// Kind names a planner command.
type Kind string

const (
	SetBudget      Kind = "budget"
	AddCategory    Kind = "add"
	RemoveCategory Kind = "remove"
	Reset          Kind = "reset"
	Summary        Kind = "summary"
	Help           Kind = "help"
	Done           Kind = "done"
)

// ErrEmptyLine is returned by ParseCommand for blank lines and comments.
var ErrEmptyLine = errors.New("empty line")

// Command is one user action. Amounts stay as typed so that rejection
// messages can echo the original input.
type Command struct {
	Kind   Kind
	Name   string
	Amount string
}

type syntax struct {
	kind  Kind
	usage string
}

var keywords = map[string]syntax{
	"budget":  {SetBudget, "budget <amount>"},
	"set":     {SetBudget, "budget <amount>"},
	"add":     {AddCategory, "add <name> <amount>"},
	"remove":  {RemoveCategory, "remove <name>"},
	"rm":      {RemoveCategory, "remove <name>"},
	"delete":  {RemoveCategory, "remove <name>"},
	"reset":   {Reset, "reset"},
	"new":     {Reset, "reset"},
	"summary": {Summary, "summary"},
	"show":    {Summary, "summary"},
	"help":    {Help, "help"},
	"?":       {Help, "help"},
	"done":    {Done, "done"},
	"quit":    {Done, "done"},
	"exit":    {Done, "done"},
}

// ParseCommand parses one input line. Keywords are case-insensitive. For
// "add" the last field is the amount and everything before it is the name,
// so "add Fresh produce 40" names the category "Fresh produce".
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, ErrEmptyLine
	}

	fields := strings.Fields(line)
	keyword := strings.ToLower(fields[0])
	args := fields[1:]

	s, ok := keywords[keyword]
	if !ok {
		return Command{}, &budgeterror.UnknownCommandError{Command: fields[0]}
	}
	usage := &budgeterror.UsageError{Command: keyword, Usage: s.usage}

	switch s.kind {
	case SetBudget:
		if len(args) != 1 {
			return Command{}, usage
		}
		return Command{Kind: SetBudget, Amount: args[0]}, nil
	case AddCategory:
		if len(args) < 2 {
			return Command{}, usage
		}
		last := len(args) - 1
		return Command{Kind: AddCategory, Name: strings.Join(args[:last], " "), Amount: args[last]}, nil
	case RemoveCategory:
		if len(args) == 0 {
			return Command{}, usage
		}
		return Command{Kind: RemoveCategory, Name: strings.Join(args, " ")}, nil
	default:
		if len(args) != 0 {
			return Command{}, usage
		}
		return Command{Kind: s.kind}, nil
	}
}

// Mutates reports whether the command can change the model.
func (c Command) Mutates() bool {
	switch c.Kind {
	case SetBudget, AddCategory, RemoveCategory, Reset:
		return true
	}
	return false
}

const helpText = `Commands:
  budget <amount>       set the weekly budget
  add <name> <amount>   allocate an amount to a category (re-adding replaces it)
  remove <name>         remove a category
  summary               show the breakdown and analysis
  reset                 start a new budget
  done                  finish the session
`
