// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"strings"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

// CheckImportOnly reports whether the file consists only of imports (ignoring block
// comments, blank lines and lines starting with "--") and, if so, which import lines
// name more than one file. For any other file it returns false and no violations.
func CheckImportOnly(ls []lines.Line, path string) (bool, []types.Violation) {
	var violations []types.Violation

	for _, l := range lines.SkipComments(ls) {
		words := strings.Fields(l.Text)
		if len(words) > 0 && words[0] == lineCommentTok {
			continue
		}
		if len(words) == 0 || words[0] != importKeyword {
			return false, nil
		}
		if multipleImports(words) {
			violations = append(violations, types.Violation{
				Kind: types.KindImport,
				Line: l.Number,
				Path: path,
			})
		}
	}

	return true, violations
}
