package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Flexoki dark palette.
var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	byKind map[Severity]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorText),
		header: r.NewStyle().Bold(true).Foreground(colorAccent),
		value:  r.NewStyle().Foreground(colorText),
		dim:    r.NewStyle().Foreground(colorBorder),
		byKind: map[Severity]lipgloss.Style{
			SeveritySuccess: r.NewStyle().Bold(true).Foreground(colorGreen),
			SeverityWarning: r.NewStyle().Bold(true).Foreground(colorOrange),
			SeverityError:   r.NewStyle().Bold(true).Foreground(colorRed),
		},
	}
}

var severityLabel = map[Severity]string{
	SeveritySuccess: "OK",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
}

// table is a bordered text table; a row holding the single cell "---" is
// drawn as a separator.
type table struct {
	headers []string
	rows    [][]string
}

func (g *Generator) renderText(s Summary) string {
	var b strings.Builder

	b.WriteString(g.styles.title.Render("Weekly Budget Summary"))
	b.WriteString("\n")

	t := table{headers: []string{"Category", "Amount", "Share"}}
	for _, c := range s.Categories {
		t.rows = append(t.rows, []string{c.Name, FormatMoney(c.Amount, g.currency), FormatPercent(c.Percentage)})
	}
	if len(t.rows) > 0 {
		t.rows = append(t.rows, []string{"---"})
	}
	t.rows = append(t.rows,
		[]string{"Weekly Budget", FormatMoney(s.Budget, g.currency), ""},
		[]string{"Total Allocated", FormatMoney(s.Allocated, g.currency), FormatPercent(s.Analysis.Utilization)},
		[]string{"Remaining", FormatMoney(s.Remaining, g.currency), ""},
	)
	b.WriteString(g.renderTable(t))

	if !s.HasCategories() {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(g.styles.header.Render("Analysis"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Budget utilization: %s\n", FormatPercent(s.Analysis.Utilization))
	for _, m := range Messages(s.Analysis, g.currency) {
		label := g.styles.byKind[m.Severity].Render(fmt.Sprintf("[%s] %s", severityLabel[m.Severity], m.Title))
		fmt.Fprintf(&b, "%s: %s\n", label, m.Detail)
	}
	return b.String()
}

func (g *Generator) renderTable(t table) string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(g.styles.dim.Render(left))
		for i, w := range widths {
			b.WriteString(g.styles.dim.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(g.styles.dim.Render(mid))
			}
		}
		b.WriteString(g.styles.dim.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(g.styles.dim.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			// First column left-aligned, numbers right-aligned.
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			if i < len(widths)-1 {
				b.WriteString(g.styles.dim.Render("│"))
			}
		}
		b.WriteString(g.styles.dim.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	line(t.headers, g.styles.header)
	rule("├", "┼", "┤")
	for _, row := range t.rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		line(row, g.styles.value)
	}
	rule("╰", "┴", "╯")
	return b.String()
}
