package planner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-planner/internal/budget"
	"fjacquet/budget-planner/internal/budgeterror"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/report"
)

// Outcome describes what a successful command did.
type Outcome struct {
	Kind    Kind
	Message string
	// Mutated is true when the model may have changed and the view should
	// be refreshed.
	Mutated bool
	Done    bool
}

// Session owns the model for one planning session.
type Session struct {
	model     *budget.Model
	generator *report.Generator
	logger    logging.Logger
	format    string
}

// NewSession creates a session around model. format is the report format
// printed after each change ("text" when empty).
func NewSession(model *budget.Model, generator *report.Generator, logger logging.Logger, format string) *Session {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if format == "" {
		format = report.FormatText
	}
	return &Session{
		model:     model,
		generator: generator,
		logger:    logger.WithField(logging.FieldComponent, "Session"),
		format:    format,
	}
}

// Model returns the session's model.
func (s *Session) Model() *budget.Model {
	return s.model
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() report.Summary {
	return report.NewSummary(s.model)
}

// Render renders the current state in the session format.
func (s *Session) Render() ([]byte, error) {
	return s.generator.Generate(s.Snapshot(), s.format)
}

// Execute dispatches one command. On error the model is unchanged.
func (s *Session) Execute(cmd Command) (Outcome, error) {
	log := s.logger.WithField(logging.FieldCommand, string(cmd.Kind))

	outcome, err := s.dispatch(cmd)
	if err != nil {
		log.WithError(err).Warn("Command rejected",
			logging.F(logging.FieldCategory, cmd.Name),
			logging.F(logging.FieldAmount, cmd.Amount))
		return Outcome{}, err
	}
	if outcome.Mutated {
		log.Debug("Command applied",
			logging.F(logging.FieldBudget, s.model.WeeklyBudget().StringFixed(2)),
			logging.F(logging.FieldRemaining, s.model.Remaining().StringFixed(2)),
			logging.F(logging.FieldCount, s.model.Len()))
	}
	return outcome, nil
}

func (s *Session) dispatch(cmd Command) (Outcome, error) {
	currency := s.generator.Currency()

	switch cmd.Kind {
	case SetBudget:
		amount, err := budget.ParseAmount(cmd.Amount)
		if err != nil {
			return Outcome{}, &budgeterror.InvalidBudgetError{Input: cmd.Amount}
		}
		if err := s.model.SetBudget(amount); err != nil {
			return Outcome{}, &budgeterror.InvalidBudgetError{Input: cmd.Amount}
		}
		return Outcome{
			Kind:    SetBudget,
			Message: fmt.Sprintf("Weekly budget set to %s.", report.FormatMoney(amount, currency)),
			Mutated: true,
		}, nil

	case AddCategory:
		if !s.model.IsSet() {
			return Outcome{}, &budgeterror.BudgetNotSetError{Command: string(AddCategory)}
		}
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			return Outcome{}, &budgeterror.MissingNameError{}
		}
		amount, err := budget.ParseAmount(cmd.Amount)
		if err != nil {
			return Outcome{}, &budgeterror.InvalidAmountError{Category: name, Input: cmd.Amount}
		}
		if err := s.model.AddCategory(name, amount); err != nil {
			var invalid *budgeterror.InvalidAmountError
			if errors.As(err, &invalid) {
				invalid.Input = cmd.Amount
			}
			return Outcome{}, err
		}
		return Outcome{
			Kind:    AddCategory,
			Message: fmt.Sprintf("Allocated %s to %s.", report.FormatMoney(amount, currency), name),
			Mutated: true,
		}, nil

	case RemoveCategory:
		if !s.model.IsSet() {
			return Outcome{}, &budgeterror.BudgetNotSetError{Command: string(RemoveCategory)}
		}
		if !s.model.RemoveCategory(cmd.Name) {
			return Outcome{Kind: RemoveCategory, Message: fmt.Sprintf("No category named %s.", cmd.Name)}, nil
		}
		return Outcome{Kind: RemoveCategory, Message: fmt.Sprintf("Removed %s.", cmd.Name), Mutated: true}, nil

	case Reset:
		s.model.Reset()
		return Outcome{Kind: Reset, Message: "Started a new budget.", Mutated: true}, nil

	case Summary:
		return Outcome{Kind: Summary}, nil

	case Help:
		return Outcome{Kind: Help, Message: helpText}, nil

	case Done:
		return Outcome{Kind: Done, Done: true}, nil

	default:
		return Outcome{}, &budgeterror.UnknownCommandError{Command: string(cmd.Kind)}
	}
}

// Run reads commands from in until "done", end of input or ctx is
// cancelled. The summary is printed after every change and on "summary";
// rejected commands print their error and the loop continues. Lines arrive
// from a reader goroutine so that cancellation is noticed while waiting for
// input; a line received after cancellation is not executed.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "=== Weekly Budget Planner ===")
	fmt.Fprintln(out, "Set a weekly budget, then add categories. Type 'help' for commands, 'done' to finish.")

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, s.prompt())

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			if err := readErr(); err != nil {
				return fmt.Errorf("reading commands: %w", err)
			}
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyLine) {
			continue
		}
		if err == nil {
			var outcome Outcome
			outcome, err = s.Execute(cmd)
			if err == nil {
				if outcome.Done {
					break
				}
				s.show(out, outcome)
				continue
			}
		}
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	if s.model.Len() > 0 {
		return s.print(out)
	}
	return nil
}

// readLines scans in on its own goroutine. The channel is closed at end of
// input; the returned func reports the scan error and may only be called
// after that. A goroutine blocked in Read outlives a cancelled ctx until
// the reader returns.
func readLines(ctx context.Context, in io.Reader) (<-chan string, func() error) {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()
	return lines, func() error { return scanErr }
}

func (s *Session) prompt() string {
	if !s.model.IsSet() {
		return "budget> "
	}
	return "plan> "
}

func (s *Session) show(out io.Writer, outcome Outcome) {
	if outcome.Message != "" {
		fmt.Fprintln(out, strings.TrimRight(outcome.Message, "\n"))
	}
	if outcome.Mutated || outcome.Kind == Summary {
		if err := s.print(out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (s *Session) print(out io.Writer) error {
	rendered, err := s.Render()
	if err != nil {
		return err
	}
	_, err = out.Write(rendered)
	return err
}
