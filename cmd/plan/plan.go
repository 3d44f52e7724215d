// Package plan implements the interactive planning session command.
package plan

import (
	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/validation"

	"github.com/spf13/cobra"
)

var (
	inputFile string
	format    string
)

// Cmd represents the plan command
var Cmd = &cobra.Command{
	Use:   "plan",
	Short: "Start an interactive budget planning session",
	Long: `Start an interactive session. Set the weekly budget with "budget <amount>",
allocate with "add <name> <amount>", drop a category with "remove <name>",
start over with "reset" and finish with "done". The summary and analysis are
printed after every change.`,
	RunE: runPlan,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML plan file to load before the session starts")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Summary format: text, json, yaml or csv (default from config)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	session := c.NewSession(format)

	if inputFile != "" {
		p, err := c.GetStore().LoadPlan(inputFile)
		if err != nil {
			return err
		}
		if err := p.Apply(session); err != nil {
			return err
		}
		c.GetLogger().Info("Plan loaded", logging.F(logging.FieldFile, inputFile))
	}

	return session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
