// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultReservedNotationFile is the only file allowed to declare reserved notation.
	DefaultReservedNotationFile = "src/tactic/reserved_notation.lean"
	// DefaultLicenseKeyword must appear in every copyright header.
	DefaultLicenseKeyword = "Apache"
)

// Options holds the repository-specific parameters of the checks
type Options struct {
	Root                 string `validate:"required"` // Repository root; paths are matched relative to it
	ReservedNotationFile string `validate:"required"` // Root-relative path exempt from the reserved notation check
	LicenseKeyword       string `validate:"required"` // License name required in the copyright header
}

// DefaultOptions returns the options used for the mathlib source tree rooted at root.
func DefaultOptions(root string) Options {
	return Options{
		Root:                 root,
		ReservedNotationFile: DefaultReservedNotationFile,
		LicenseKeyword:       DefaultLicenseKeyword,
	}
}

// Validate checks that all options are set.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return &Error{Message: "invalid check options", Cause: err}
	}
	return nil
}

// RelPath returns path relative to root. Paths outside root, or paths that cannot be
// made absolute, are returned cleaned but otherwise unchanged.
func RelPath(root, path string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.Clean(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Clean(path)
	}
	return rel
}
