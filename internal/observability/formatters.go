// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/lean-style/internal/exceptions"
	"github.com/jonathan/lean-style/internal/lint"
	"github.com/jonathan/lean-style/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExceptions outputs how many baseline exceptions were loaded, per check kind.
func (p *Printer) PrintExceptions(entries []exceptions.Entry) {
	var sb strings.Builder

	if len(entries) == 0 {
		sb.WriteString("No exceptions loaded: generating a new baseline")
		p.printBox("STYLE EXCEPTIONS", sb.String())
		return
	}

	perKind := make(map[types.Kind]int)
	for _, e := range entries {
		perKind[e.Kind]++
	}

	sb.WriteString(fmt.Sprintf("Loaded %d exception(s)\n\n", len(entries)))
	for _, kind := range types.AllKinds {
		if n := perKind[kind]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %s  %d\n", kind, n))
		}
	}

	p.printBox("STYLE EXCEPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the totals of a finished lint run.
func (p *Printer) PrintRunSummary(result *lint.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:            %s\n", result.Mode))
	sb.WriteString(fmt.Sprintf("Files checked:   %d\n", result.FilesChecked))
	sb.WriteString(fmt.Sprintf("Suppressed:      %d\n", result.Suppressed))
	sb.WriteString(fmt.Sprintf("New violations:  %d\n", result.NewViolations))

	if result.NewViolations > 0 {
		sb.WriteString("\n")
		shown := 0
		for _, kind := range types.AllKinds {
			n := result.ByKind[kind]
			if n == 0 {
				continue
			}
			if shown == maxItemsToShow {
				sb.WriteString("  ...\n")
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s %-4d %s\n", kind, n, kind.Message()))
			shown++
		}
	}

	status := "PASSED"
	if result.Failed() {
		status = "FAILED"
	}
	sb.WriteString(fmt.Sprintf("\nStatus: %s", status))

	p.printBox("STYLE LINT SUMMARY", sb.String())
}
