// Package summary implements the one-shot summary command.
package summary

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/container"
	"fjacquet/budget-planner/internal/planner"
	"fjacquet/budget-planner/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the inputs of a summary run.
type Options struct {
	InputFile  string
	Budget     string
	Categories []string // "name=amount"
	Format     string
	OutputFile string
}

var opts Options

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the breakdown and analysis of a budget",
	Long: `Build a budget from a plan file and/or flags and print its breakdown and
analysis. Flags are applied after the plan file, so --budget overrides the
file's weekly budget and --category adds or replaces categories.`,
	Example: `  budget-planner summary --budget 100 --category Produce=40 --category Dairy=30
  budget-planner summary --input weekly.yaml --format csv --output out/weekly.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, opts, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.InputFile, "input", "i", "", "YAML plan file")
	Cmd.Flags().StringVarP(&opts.Budget, "budget", "b", "", "Weekly budget amount")
	Cmd.Flags().StringArrayVar(&opts.Categories, "category", nil, "Category allocation as name=amount (repeatable)")
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, yaml or csv (default from config)")
	Cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "Write the summary to this file instead of stdout")
}

// ParseCategory splits "name=amount" at the last '='.
func ParseCategory(s string) (planner.Command, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return planner.Command{}, fmt.Errorf("invalid category %q: expected name=amount", s)
	}
	return planner.Command{Kind: planner.AddCategory, Name: s[:i], Amount: s[i+1:]}, nil
}

// Run builds the budget described by o and renders it to out or o.OutputFile.
func Run(c *container.Container, o Options, out io.Writer) error {
	if err := validation.IsValidOutputFormat(o.Format); err != nil {
		return err
	}
	session := c.NewSession(o.Format)

	if o.InputFile != "" {
		p, err := c.GetStore().LoadPlan(o.InputFile)
		if err != nil {
			return err
		}
		if err := p.Apply(session); err != nil {
			return err
		}
	}

	var cmds []planner.Command
	if o.Budget != "" {
		cmds = append(cmds, planner.Command{Kind: planner.SetBudget, Amount: o.Budget})
	}
	for _, raw := range o.Categories {
		cmd, err := ParseCategory(raw)
		if err != nil {
			return err
		}
		cmds = append(cmds, cmd)
	}
	for _, cmd := range cmds {
		if _, err := session.Execute(cmd); err != nil {
			return err
		}
	}

	rendered, err := session.Render()
	if err != nil {
		return err
	}
	if o.OutputFile != "" {
		return c.GetStore().WriteExport(o.OutputFile, rendered)
	}
	_, err = out.Write(rendered)
	return err
}
