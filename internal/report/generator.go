package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/budget-planner/internal/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Generator renders summaries in one of the supported formats.
type Generator struct {
	logger    logging.Logger
	currency  string
	delimiter rune
	styles    styles
}

// Option configures a Generator.
type Option func(*Generator)

// WithCurrency sets the symbol printed in front of amounts.
func WithCurrency(symbol string) Option {
	return func(g *Generator) {
		g.currency = symbol
	}
}

// WithCSVDelimiter sets the CSV field separator.
func WithCSVDelimiter(delim rune) Option {
	return func(g *Generator) {
		g.delimiter = delim
	}
}

// WithRenderer sets the lipgloss renderer used for text output. Passing a
// renderer bound to a non-terminal writer yields uncoloured text.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(g *Generator) {
		g.styles = newStyles(r)
	}
}

// NewGenerator creates a Generator. Without options it renders "$" amounts,
// comma-separated CSV and text styled for the default terminal.
func NewGenerator(logger logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	g := &Generator{
		logger:    logger.WithField(logging.FieldComponent, "ReportGenerator"),
		currency:  "$",
		delimiter: ',',
		styles:    newStyles(lipgloss.DefaultRenderer()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders s in the requested format.
func (g *Generator) Generate(s Summary, format string) ([]byte, error) {
	g.logger.Debug("Rendering summary",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(s.Categories)))

	switch strings.ToLower(format) {
	case FormatText, "":
		return []byte(g.renderText(s)), nil
	case FormatJSON:
		return g.generateJSON(s)
	case FormatYAML:
		return g.generateYAML(s)
	case FormatCSV:
		return g.generateCSV(s)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// document is the JSON/YAML shape of a summary. Amounts are fixed-point
// strings so that 40 is written as "40.00".
type document struct {
	WeeklyBudget string         `json:"weekly_budget" yaml:"weekly_budget"`
	Allocated    string         `json:"total_allocated" yaml:"total_allocated"`
	Remaining    string         `json:"remaining" yaml:"remaining"`
	Utilization  string         `json:"utilization_percent" yaml:"utilization_percent"`
	Status       string         `json:"status" yaml:"status"`
	Unbalanced   bool           `json:"unbalanced" yaml:"unbalanced"`
	Categories   []categoryLine `json:"categories" yaml:"categories"`
	Messages     []Message      `json:"messages" yaml:"messages"`
}

type categoryLine struct {
	Name       string `json:"name" yaml:"name" csv:"category"`
	Amount     string `json:"amount" yaml:"amount" csv:"amount"`
	Percentage string `json:"percentage" yaml:"percentage" csv:"percentage"`
}

func (g *Generator) toDocument(s Summary) document {
	lines := make([]categoryLine, 0, len(s.Categories))
	for _, c := range s.Categories {
		lines = append(lines, categoryLine{
			Name:       c.Name,
			Amount:     c.Amount.StringFixed(2),
			Percentage: c.Percentage.StringFixed(1),
		})
	}
	// Matches the text renderer, which omits the analysis for an empty plan.
	messages := []Message{}
	if s.HasCategories() {
		messages = Messages(s.Analysis, g.currency)
	}
	return document{
		WeeklyBudget: s.Budget.StringFixed(2),
		Allocated:    s.Allocated.StringFixed(2),
		Remaining:    s.Remaining.StringFixed(2),
		Utilization:  s.Analysis.Utilization.StringFixed(1),
		Status:       s.Analysis.Status.String(),
		Unbalanced:   s.Analysis.Unbalanced,
		Categories:   lines,
		Messages:     messages,
	}
}

func (g *Generator) generateJSON(s Summary) ([]byte, error) {
	out, err := json.MarshalIndent(g.toDocument(s), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(s Summary) ([]byte, error) {
	out, err := yaml.Marshal(g.toDocument(s))
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateCSV(s Summary) ([]byte, error) {
	lines := g.toDocument(s).Categories

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = g.delimiter
	if err := gocsv.MarshalCSV(&lines, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

// Currency returns the symbol amounts are rendered with.
func (g *Generator) Currency() string {
	return g.currency
}
