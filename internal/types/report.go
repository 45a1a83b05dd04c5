// Package types provides type definitions for structured data used throughout the style linter.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Mode is the reporting mode of a lint run.
type Mode string

const (
	// ModeGenerate is used when no exception baseline is loaded; every violation is printed
	// in the baseline row format and the run never fails.
	ModeGenerate Mode = "generate"
	// ModeCheck is used when a baseline is loaded; new violations are printed as CI
	// annotations and fail the run.
	ModeCheck Mode = "check"
)

// ReportedViolation is a violation as written to the JSON report
type ReportedViolation struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report is the structured output of a lint run (written with --json-out)
type Report struct {
	RunID         string              `json:"run_id"`
	Mode          Mode                `json:"mode"`
	FilesChecked  int                 `json:"files_checked"`
	Suppressed    int                 `json:"suppressed"`
	NewViolations int                 `json:"new_violations"`
	Violations    []ReportedViolation `json:"violations"`
}
