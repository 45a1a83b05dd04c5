// Package report formats style violations for people, for the exceptions baseline and for CI.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/lean-style/internal/types"
)

// Collector gathers reported violations for the JSON report.
type Collector struct {
	violations []types.ReportedViolation
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{violations: []types.ReportedViolation{}}
}

// Report records v.
func (c *Collector) Report(v types.Violation) error {
	c.violations = append(c.violations, types.ReportedViolation{
		Path:    v.Path,
		Line:    v.Line,
		Code:    v.Code(),
		Message: v.Message(),
	})
	return nil
}

// Violations returns the recorded violations in report order.
func (c *Collector) Violations() []types.ReportedViolation {
	return c.violations
}

// Build assembles the report document for a finished run.
func (c *Collector) Build(mode types.Mode, filesChecked, suppressed int) *types.Report {
	return &types.Report{
		RunID:         uuid.New().String(),
		Mode:          mode,
		FilesChecked:  filesChecked,
		Suppressed:    suppressed,
		NewViolations: len(c.violations),
		Violations:    c.violations,
	}
}

// WriteJSON writes the report to path, creating the parent directory if needed.
func WriteJSON(path string, report *types.Report) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report to output file: %w", err)
	}
	return nil
}
