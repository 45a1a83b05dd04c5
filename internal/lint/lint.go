// Package lint runs the style checks over a list of files, reconciles the violations
// with the exceptions baseline and reports the new ones.
package lint

import (
	"fmt"
	"log"

	"github.com/jonathan/lean-style/internal/exceptions"
	"github.com/jonathan/lean-style/internal/report"
	"github.com/jonathan/lean-style/internal/types"
	"github.com/jonathan/lean-style/internal/validation"
)

// Result accumulates the outcome of a run.
type Result struct {
	Mode          types.Mode
	FilesChecked  int
	Suppressed    int
	NewViolations int
	ByKind        map[types.Kind]int // new violations per kind
}

// Failed reports whether the run must exit non-zero: new violations were found while
// checking against a baseline. Generation runs never fail.
func (r *Result) Failed() bool {
	return r.Mode == types.ModeCheck && r.NewViolations > 0
}

// fileResult is the outcome for a single file, merged into Result by Run.
type fileResult struct {
	suppressed int
	reported   []types.Violation
}

func (r *Result) add(fr fileResult) {
	r.FilesChecked++
	r.Suppressed += fr.suppressed
	r.NewViolations += len(fr.reported)
	for _, v := range fr.reported {
		r.ByKind[v.Kind]++
	}
}

// Linter checks files one at a time, in the order given.
type Linter struct {
	opts     validation.Options
	store    *exceptions.Store
	reporter report.Reporter
	verbose  bool
}

// New creates a Linter. The store decides the mode: an empty store means the run
// generates a baseline.
func New(opts validation.Options, store *exceptions.Store, reporter report.Reporter, verbose bool) (*Linter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = exceptions.NewStore(opts.Root)
	}
	return &Linter{opts: opts, store: store, reporter: reporter, verbose: verbose}, nil
}

// Mode returns the reporting mode of the run.
func (l *Linter) Mode() types.Mode {
	return l.store.Mode()
}

// Run lints every path. An unreadable file aborts the run.
func (l *Linter) Run(paths []string) (*Result, error) {
	result := &Result{Mode: l.Mode(), ByKind: make(map[types.Kind]int)}

	if l.verbose {
		log.Printf("[lint] Checking %d file(s) in %s mode (%d exception(s) loaded)", len(paths), result.Mode, l.store.Len())
	}

	for _, path := range paths {
		fr, err := l.lintFile(path)
		if err != nil {
			return result, fmt.Errorf("failed to lint %s: %w", path, err)
		}
		result.add(fr)
	}

	return result, nil
}

func (l *Linter) lintFile(path string) (fileResult, error) {
	var fr fileResult

	violations, err := validation.ValidateFile(path, l.opts)
	if err != nil {
		return fr, err
	}

	for _, v := range violations {
		if l.store.Suppresses(v) {
			fr.suppressed++
			continue
		}
		if err := l.reporter.Report(v); err != nil {
			return fr, fmt.Errorf("failed to report violation: %w", err)
		}
		fr.reported = append(fr.reported, v)
	}

	if l.verbose && (len(fr.reported) > 0 || fr.suppressed > 0) {
		log.Printf("[lint] %s: %d new, %d suppressed", path, len(fr.reported), fr.suppressed)
	}

	return fr, nil
}
