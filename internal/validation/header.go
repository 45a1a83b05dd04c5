// Package validation provides the style checks run over each Lean source file.
package validation

import (
	"strings"

	"github.com/jonathan/lean-style/internal/lines"
	"github.com/jonathan/lean-style/internal/types"
)

const (
	headerOpen     = "/-\n"
	headerClose    = "-/\n"
	moduleDocOpen  = "/-!"
	importKeyword  = "import"
	lineCommentTok = "--"
)

// headerState is folded over the raw lines by CheckHeader.
type headerState struct {
	started   bool
	done      bool
	startLine int
	text      strings.Builder
}

// CheckHeader checks the copyright header, the imports that follow it and the position
// of the module docstring.
//
// The file must open with a "/-" line and a block comment containing "Copyright", the
// license keyword and "Author". Blank lines before the header are reported at the
// header start line seen so far (0 if none), any other line before it at its own line.
// After the header only blank lines and imports may precede the "/-!" module docstring.
// Checking stops at the docstring or at the first misplaced line.
func CheckHeader(ls []lines.Line, path string, opts Options) []types.Violation {
	var violations []types.Violation
	var st headerState

	report := func(kind types.Kind, line int) {
		violations = append(violations, types.Violation{Kind: kind, Line: line, Path: path})
	}

	for _, l := range ls {
		if !st.started {
			if l.Text == "\n" {
				report(types.KindCopyright, st.startLine)
				continue
			}
			if l.Text == headerOpen {
				st.started = true
				st.startLine = l.Number
				continue
			}
			// not a header at all; the line is still checked as an import below
			report(types.KindCopyright, l.Number)
		}

		if st.started && !st.done {
			st.text.WriteString(l.Text)
			if l.Text == headerClose {
				if !headerComplete(st.text.String(), opts.LicenseKeyword) {
					report(types.KindCopyright, st.startLine)
				}
				st.done = true
			}
			continue
		}

		if st.done && l.Text == "\n" {
			continue
		}

		words := strings.Fields(l.Text)
		if len(words) == 0 || (words[0] != importKeyword && words[0] != moduleDocOpen) {
			report(types.KindModuleDoc, l.Number)
			break
		}
		if words[0] == moduleDocOpen {
			break
		}
		if multipleImports(words) {
			report(types.KindImport, l.Number)
		}
	}

	return violations
}

func headerComplete(text, license string) bool {
	return strings.Contains(text, "Copyright") &&
		strings.Contains(text, license) &&
		strings.Contains(text, "Author")
}

// multipleImports reports whether an import line names more than one file.
// A trailing "--" comment after the first name is allowed.
func multipleImports(words []string) bool {
	return len(words) > 2 && words[2] != lineCommentTok
}
