// Package container wires the planner's dependencies from a Config.
package container

import (
	"fmt"
	"io"
	"os"

	"fjacquet/budget-planner/internal/budget"
	"fjacquet/budget-planner/internal/config"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/planner"
	"fjacquet/budget-planner/internal/report"
	"fjacquet/budget-planner/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Container holds the wired dependencies. It is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	modelOpts []budget.Option
	generator *report.Generator
	store     *store.PlanStore
}

// NewContainer builds every dependency from cfg. Logs go to logOut and
// rendered text is styled for out.
func NewContainer(cfg *config.Config, out, logOut io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if out == nil {
		out = os.Stdout
	}
	if logOut == nil {
		logOut = os.Stderr
	}

	logger := logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, logOut)

	modelOpts, err := cfg.Budget.ModelOptions()
	if err != nil {
		return nil, fmt.Errorf("budget options: %w", err)
	}

	delim := []rune(cfg.Output.CSVDelimiter)
	if len(delim) != 1 {
		return nil, fmt.Errorf("CSV delimiter must be a single character, got: %q", cfg.Output.CSVDelimiter)
	}

	renderer := lipgloss.NewRenderer(out)
	if !cfg.Output.Color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	generator := report.NewGenerator(logger,
		report.WithCurrency(cfg.Budget.CurrencySymbol),
		report.WithCSVDelimiter(delim[0]),
		report.WithRenderer(renderer),
	)

	logger.Debug("Container initialized",
		logging.F("overwrite_policy", cfg.Budget.OverwritePolicy),
		logging.F(logging.FieldFormat, cfg.Output.Format))

	return &Container{
		logger:    logger,
		config:    cfg,
		modelOpts: modelOpts,
		generator: generator,
		store:     store.NewPlanStore(logger),
	}, nil
}

// NewSession returns a session around a fresh model. format overrides the
// configured output format when non-empty.
func (c *Container) NewSession(format string) *planner.Session {
	if format == "" {
		format = c.config.Output.Format
	}
	return planner.NewSession(budget.New(c.modelOpts...), c.generator, c.logger, format)
}

// GetLogger returns the logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetStore returns the plan store.
func (c *Container) GetStore() *store.PlanStore {
	return c.store
}
