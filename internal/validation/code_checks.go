// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

// ForbiddenChar is the small alpha with vrachy; plain α must be used instead.
const ForbiddenChar = "ᾰ"

var (
	reservedNotationPrefixes = []string{"reserve", "precedence"}
	// pp (pretty printer), pr (profiler) and tr (trace) options
	forbiddenOptionPrefixes = []string{"pp", "pr", "tr"}
)

// CheckForbiddenChar flags code lines containing ForbiddenChar.
func CheckForbiddenChar(ls []lines.Line, path string) []types.Violation {
	var violations []types.Violation

	for _, l := range lines.Code(ls) {
		if strings.Contains(l.Text, ForbiddenChar) {
			violations = append(violations, types.Violation{Kind: types.KindForbiddenChar, Line: l.Number, Path: path})
		}
	}

	return violations
}

// CheckReservedNotation flags declaration lines starting with "reserve" or "precedence",
// except in the file designated by opts.ReservedNotationFile. Notation lines usually
// quote their token, so only lines beginning inside a string literal are skipped.
func CheckReservedNotation(ls []lines.Line, path string, opts Options) []types.Violation {
	if RelPath(opts.Root, path) == filepath.Clean(opts.ReservedNotationFile) {
		return nil
	}

	var violations []types.Violation
	for _, l := range lines.Declarations(ls) {
		if hasAnyPrefix(l.Text, reservedNotationPrefixes) {
			violations = append(violations, types.Violation{Kind: types.KindReservedNotation, Line: l.Number, Path: path})
		}
	}

	return violations
}

// CheckSetOption flags "set_option" commands for pretty printer, profiler and trace options.
func CheckSetOption(ls []lines.Line, path string) []types.Violation {
	var violations []types.Violation

	for _, l := range lines.Code(ls) {
		if !strings.HasPrefix(l.Text, "set_option") {
			continue
		}
		// tokens are split on single spaces, so "set_option  pp" has an empty option
		tokens := strings.Split(l.Text, " ")
		if len(tokens) < 2 {
			continue
		}
		if hasAnyPrefix(tokens[1], forbiddenOptionPrefixes) {
			violations = append(violations, types.Violation{Kind: types.KindSetOption, Line: l.Number, Path: path})
		}
	}

	return violations
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
