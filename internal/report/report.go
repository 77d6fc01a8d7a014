// Package report emits the per-entry action lines of a cleanup run. Removal
// intent and success lines are styled so they stand out from plain
// informational output; failures go to a separate error stream. The lines are
// advisory output for humans, not a machine-readable contract.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the action lines
var (
	removingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")) // bright red

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")) // red

	excludeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")) // yellow

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)

// Printer writes action lines for one cleanup run. The zero value is not
// usable; construct with New or NewWithWriters.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a Printer writing to stdout and stderr.
func New() *Printer {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters returns a Printer writing to the given streams, used by tests
// to capture output.
func NewWithWriters(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// Removing reports intent to remove a matched entry. In dry-run mode this is
// the only line the entry produces.
func (p *Printer) Removing(path string) {
	fmt.Fprintf(p.out, "%s %q...\n", removingStyle.Render("Removing"), path)
}

// Removed reports a completed removal.
func (p *Printer) Removed(path string) {
	fmt.Fprintf(p.out, "%s %q...\n", removedStyle.Render("Removed"), path)
}

// Excluded reports an entry suppressed by the exclusion set.
func (p *Printer) Excluded(path string) {
	fmt.Fprintf(p.out, "%s %q...\n", excludeStyle.Render("Exclude"), path)
}

// Failure reports a non-fatal traversal or removal error. The run continues.
func (p *Printer) Failure(err error) {
	fmt.Fprintf(p.err, "%s %v\n", errorStyle.Render("Error:"), err)
}

// Failuref reports a non-fatal error with context.
func (p *Printer) Failuref(format string, args ...interface{}) {
	fmt.Fprintf(p.err, "%s %s\n", errorStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// Info writes a plain informational line.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
