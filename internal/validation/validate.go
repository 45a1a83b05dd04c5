// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"fmt"
	"os"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

// ReadLines reads a source file and splits it into numbered lines.
func ReadLines(path string) ([]lines.Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read source file: %s", path),
			Cause:   err,
		}
	}
	return lines.Split(string(data)), nil
}

// ValidateFile reads path and runs every style check on it.
func ValidateFile(path string, opts Options) ([]types.Violation, error) {
	ls, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return CheckFile(ls, path, opts), nil
}

// CheckFile runs the style checks over the lines of one file, in order:
//
//  1. line length, always
//  2. import-only classification; an import-only file gets only its import violations
//  3. copyright header, imports and module docstring
//  4. forbidden character, reserved notation and set_option
func CheckFile(ls []lines.Line, path string, opts Options) []types.Violation {
	var allViolations []types.Violation

	allViolations = append(allViolations, CheckLineLength(ls, path)...)

	if importOnly, importViolations := CheckImportOnly(ls, path); importOnly {
		return append(allViolations, importViolations...)
	}

	allViolations = append(allViolations, CheckHeader(ls, path, opts)...)
	allViolations = append(allViolations, CheckForbiddenChar(ls, path)...)
	allViolations = append(allViolations, CheckReservedNotation(ls, path, opts)...)
	allViolations = append(allViolations, CheckSetOption(ls, path)...)

	return allViolations
}
