// Package report formats style violations for people, for the exceptions baseline and for CI.
package report

import (
	"fmt"
	"io"

	"github.com/jonathan/lean-style/internal/types"
)

// Reporter emits violations that were not suppressed by the exceptions baseline.
type Reporter interface {
	Report(v types.Violation) error
}

// Plain writes one "<path> : line <n> : <CODE> : <message>" line per violation.
// Path comes first so the output can be piped through sort; the sorted output is a
// valid exceptions file.
type Plain struct {
	out io.Writer
}

// NewPlain creates a Plain reporter writing to out.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

// Report writes v.
func (p *Plain) Report(v types.Violation) error {
	_, err := fmt.Fprintf(p.out, "%s : line %d : %s : %s\n", v.Path, v.Line, v.Code(), v.Message())
	return err
}

// Annotation writes GitHub Actions error annotations. The code is repeated in the
// message because the annotation UI does not reliably surface it.
type Annotation struct {
	out io.Writer
}

// NewAnnotation creates an Annotation reporter writing to out.
func NewAnnotation(out io.Writer) *Annotation {
	return &Annotation{out: out}
}

// Report writes v.
func (a *Annotation) Report(v types.Violation) error {
	_, err := fmt.Fprintf(a.out, "::error file=%s,line=%d,code=%s::%s: %s\n", v.Path, v.Line, v.Code(), v.Code(), v.Message())
	return err
}

// For returns the reporter for mode: plain text when generating a baseline,
// annotations when checking against one.
func For(out io.Writer, mode types.Mode) Reporter {
	if mode == types.ModeGenerate {
		return NewPlain(out)
	}
	return NewAnnotation(out)
}

// Tee reports every violation to all reporters, stopping at the first error.
type Tee []Reporter

// Report writes v to each reporter in order.
func (t Tee) Report(v types.Violation) error {
	for _, r := range t {
		if err := r.Report(v); err != nil {
			return err
		}
	}
	return nil
}
