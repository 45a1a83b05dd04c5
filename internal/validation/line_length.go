// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

// MaxLineLength is the maximum number of characters on a line, not counting the newline.
const MaxLineLength = 100

// CheckLineLength flags raw lines longer than MaxLineLength characters.
// Lines containing "http" are skipped since URLs cannot be wrapped.
func CheckLineLength(ls []lines.Line, path string) []types.Violation {
	var violations []types.Violation

	for _, l := range ls {
		if strings.Contains(l.Text, "http") {
			continue
		}
		// the raw text still carries its newline
		if utf8.RuneCountInString(l.Text) > MaxLineLength+1 {
			violations = append(violations, types.Violation{
				Kind: types.KindLineLength,
				Line: l.Number,
				Path: path,
			})
		}
	}

	return violations
}
