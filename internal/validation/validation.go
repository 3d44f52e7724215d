// Package validation checks user-supplied paths and formats before they
// reach the store or the report generator.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/budget-planner/internal/report"
)

// SupportedFormats lists the summary formats in display order.
var SupportedFormats = []string{report.FormatText, report.FormatJSON, report.FormatYAML, report.FormatCSV}

// IsValidPlanFile checks that path exists and is a regular file.
func IsValidPlanFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("plan file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking plan file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("plan file %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported, ignoring
// case. An empty format means "use the configured default" and is accepted.
func IsValidOutputFormat(format string) error {
	if format == "" {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, f := range SupportedFormats {
		if normalized == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s",
		format, strings.Join(SupportedFormats, ", "))
}

// IsValidFilePermissions rejects modes that grant any access to others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.String())
	}
	return nil
}
