package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-planner/internal/budget"
	"fjacquet/budget-planner/internal/budgeterror"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/planner"
	"fjacquet/budget-planner/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newSession() *planner.Session {
	logger := logging.NewMockLogger()
	gen := report.NewGenerator(logger, report.WithRenderer(lipgloss.NewRenderer(io.Discard)))
	return planner.NewSession(budget.New(), gen, logger, report.FormatText)
}

func TestLoadPlan_AndApply(t *testing.T) {
	path := writePlan(t, t.TempDir(), `weekly_budget: 100
categories:
  - name: Produce
    amount: 40
  - name: Dairy
    amount: "30.50"
`)
	s := NewPlanStore(logging.NewMockLogger())

	plan, err := s.LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "100", plan.WeeklyBudget)
	require.Len(t, plan.Categories, 2)
	assert.Equal(t, "30.50", plan.Categories[1].Amount)

	session := newSession()
	require.NoError(t, plan.Apply(session))
	assert.Equal(t, "70.50", session.Model().TotalAllocated().StringFixed(2))
}

func TestPlanApply_StopsAtFirstRejection(t *testing.T) {
	plan := &Plan{
		WeeklyBudget: "100",
		Categories: []PlanCategory{
			{Name: "A", Amount: "90"},
			{Name: "B", Amount: "20"},
			{Name: "C", Amount: "5"},
		},
	}
	session := newSession()

	err := plan.Apply(session)

	var exceeded *budgeterror.BudgetExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Contains(t, err.Error(), "plan entry 3")
	_, ok := session.Model().Amount("C")
	assert.False(t, ok)
}

func TestPlanCommands_WithoutBudget(t *testing.T) {
	plan := &Plan{Categories: []PlanCategory{{Name: "A", Amount: "1"}}}

	cmds := plan.Commands()

	require.Len(t, cmds, 1)
	assert.Equal(t, planner.AddCategory, cmds[0].Kind)
}

func TestFindPlanFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0750))
	require.NoError(t, os.WriteFile(filepath.Join("config", "weekly.yaml"), []byte("weekly_budget: 1\n"), 0600))

	s := NewPlanStore(nil)

	path, err := s.FindPlanFile("weekly.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "weekly.yaml"), path)

	_, err = s.FindPlanFile("missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = s.FindPlanFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPlan_InvalidYAML(t *testing.T) {
	path := writePlan(t, t.TempDir(), "categories: [oops\n")

	_, err := NewPlanStore(logging.NewMockLogger()).LoadPlan(path)
	assert.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	require.NoError(t, NewPlanStore(logger).WriteExport(path, []byte("category,amount\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "category,amount\n", string(data))
	assert.True(t, logger.HasEntry("INFO", "Wrote export"))
}

func TestWriteExport_TightensExistingFile(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))
	require.NoError(t, os.Chmod(path, 0644))

	require.NoError(t, NewPlanStore(logger).WriteExport(path, []byte("new")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, logger.HasEntry("WARN", "Tightening export permissions"))
}

func TestLoadPlan_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "plan.yaml"), 0750))

	_, err := NewPlanStore(logging.NewMockLogger()).LoadPlan(filepath.Join(dir, "plan.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}
