package plan

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/config"
	"fjacquet/budget-planner/internal/container"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCommand_Metadata(t *testing.T) {
	assert.Equal(t, "plan", Cmd.Use)
	assert.Contains(t, Cmd.Short, "interactive")
	assert.NotNil(t, Cmd.RunE)
}

func TestPlanCommand_Flags(t *testing.T) {
	input := Cmd.Flags().Lookup("input")
	assert.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	format := Cmd.Flags().Lookup("format")
	assert.NotNil(t, format)
	assert.Equal(t, "", format.DefValue)
}

func setupContainer(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Budget.NearlyFullRatio = 0.1
	cfg.Budget.BalanceRatio = 3
	cfg.Budget.CurrencySymbol = "$"
	cfg.Output.Format = "text"
	cfg.Output.CSVDelimiter = ","

	c, err := container.NewContainer(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	previous := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = previous })
}

func scriptedCommand(script string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(script))
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunPlan_ScriptedSession(t *testing.T) {
	setupContainer(t)
	cmd, out := scriptedCommand("budget 100\nadd Produce 40\nadd Dairy 30\ndone\n")

	require.NoError(t, runPlan(cmd, nil))

	assert.Contains(t, out.String(), "Allocated $40.00 to Produce.")
	assert.Contains(t, out.String(), "[OK] Good budget allocation: You have $30.00 remaining")
}

func TestRunPlan_PreloadsPlanFile(t *testing.T) {
	setupContainer(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weekly_budget: 50\ncategories:\n  - name: A\n    amount: 10\n"), 0600))

	inputFile = path
	defer func() { inputFile = "" }()

	cmd, out := scriptedCommand("add B 40\n")
	require.NoError(t, runPlan(cmd, nil))

	assert.Contains(t, out.String(), "[OK] Perfect planning")
	assert.Contains(t, out.String(), "[WARNING] Unbalanced categories")
}
