// Package store reads plan files and writes rendered exports.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/planner"
	"fjacquet/budget-planner/internal/validation"

	"gopkg.in/yaml.v3"
)

// Plan is a budget with its categories as written in a YAML plan file:
//
//	weekly_budget: 100
//	categories:
//	  - name: Produce
//	    amount: 40
type Plan struct {
	WeeklyBudget string         `yaml:"weekly_budget"`
	Categories   []PlanCategory `yaml:"categories"`
}

// PlanCategory is one allocation in a plan file.
type PlanCategory struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
}

// Commands converts the plan into the commands that build it.
func (p *Plan) Commands() []planner.Command {
	cmds := make([]planner.Command, 0, len(p.Categories)+1)
	if p.WeeklyBudget != "" {
		cmds = append(cmds, planner.Command{Kind: planner.SetBudget, Amount: p.WeeklyBudget})
	}
	for _, c := range p.Categories {
		cmds = append(cmds, planner.Command{Kind: planner.AddCategory, Name: c.Name, Amount: c.Amount})
	}
	return cmds
}

// Apply replays the plan into session, stopping at the first rejection.
func (p *Plan) Apply(session *planner.Session) error {
	for i, cmd := range p.Commands() {
		if _, err := session.Execute(cmd); err != nil {
			return fmt.Errorf("plan entry %d (%s %s): %w", i+1, cmd.Kind, cmd.Name, err)
		}
	}
	return nil
}

const exportPerm os.FileMode = 0600

// PlanStore locates and reads plan files.
type PlanStore struct {
	logger logging.Logger
}

// NewPlanStore creates a PlanStore.
func NewPlanStore(logger logging.Logger) *PlanStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PlanStore{logger: logger.WithField(logging.FieldComponent, "PlanStore")}
}

// FindPlanFile looks for filename as given, then under ./config and
// ~/.config/budget-planner.
func (s *PlanStore) FindPlanFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budget-planner", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", fmt.Errorf("plan file %s: %w", filename, os.ErrNotExist)
}

// LoadPlan reads and decodes a plan file.
func (s *PlanStore) LoadPlan(filename string) (*Plan, error) {
	path, err := s.FindPlanFile(filename)
	if err != nil {
		s.logger.Warn("Plan file not found", logging.F(logging.FieldFile, filename))
		return nil, err
	}
	if err := validation.IsValidPlanFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("error reading plan file: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("error parsing plan file %s: %w", path, err)
	}

	s.logger.Debug("Loaded plan",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(plan.Categories)))
	return &plan, nil
}

// WriteExport writes rendered output to path, creating parent directories.
func (s *PlanStore) WriteExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, exportPerm); err != nil {
		return fmt.Errorf("error writing export: %w", err)
	}
	// WriteFile keeps the mode of a file that already existed.
	if info, err := os.Stat(path); err == nil && validation.IsValidFilePermissions(info.Mode().Perm()) != nil {
		s.logger.Warn("Tightening export permissions", logging.F(logging.FieldFile, path))
		if err := os.Chmod(path, exportPerm); err != nil {
			return fmt.Errorf("error setting export permissions: %w", err)
		}
	}
	s.logger.Info("Wrote export", logging.F(logging.FieldFile, path))
	return nil
}
