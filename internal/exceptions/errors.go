// Package exceptions loads the baseline of pre-approved style violations.
package exceptions

import "fmt"

// ParseError represents a malformed row in the exceptions file
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("exceptions file %s:%d: %s", e.Path, e.Line, e.Message)
}

// LoadError represents an error reading the exceptions file
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load exceptions file %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
