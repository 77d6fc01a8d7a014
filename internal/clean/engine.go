// Package clean implements the rule-driven recursive cleanup engine. For each
// rule it walks the destination depth-first, deletes every entry whose kind
// and name (folder rules) or extension (file rules) match, skips excluded
// names entirely, and recurses into every non-matching directory. Traversal
// and removal failures are reported and swallowed; nothing in this package
// aborts a run.
package clean

import (
	"os"
	"path/filepath"

	"sweepd/internal/log"
	"sweepd/internal/report"
	"sweepd/pkg/types"
)

// Engine executes cleanup rules. It is single-threaded; one walk runs at a
// time and the filesystem is the only mutable state it touches.
type Engine struct {
	dryRun  bool
	deleter Deleter
	printer *report.Printer
}

// New creates an engine with the real filesystem deleter and stdout/stderr
// reporting.
func New() *Engine {
	return &Engine{
		deleter: OSDeleter{},
		printer: report.New(),
	}
}

// NewWithOptions creates an engine with explicit collaborators. A nil deleter
// or printer falls back to the defaults.
func NewWithOptions(dryRun bool, deleter Deleter, printer *report.Printer) *Engine {
	if deleter == nil {
		deleter = OSDeleter{}
	}
	if printer == nil {
		printer = report.New()
	}
	return &Engine{
		dryRun:  dryRun,
		deleter: deleter,
		printer: printer,
	}
}

// SetDryRun sets whether removals are performed or only reported
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode
func (e *Engine) IsDryRun() bool {
	return e.dryRun
}

// Run executes every rule strictly in sequence and returns one result per
// matched entry. A rule whose traversal hits errors does not prevent the
// rules after it from running.
func (e *Engine) Run(rules []types.Rule) []types.CleanResult {
	var results []types.CleanResult
	for _, rule := range rules {
		log.WithFields(
			log.F("destination", rule.Destination),
			log.F("kind", rule.Kind.String()),
			log.F("patterns", len(rule.Patterns)),
		).Debug("Cleaning destination")
		results = append(results, e.Clean(rule)...)
	}
	return results
}

// Clean walks a single rule's destination.
func (e *Engine) Clean(rule types.Rule) []types.CleanResult {
	return e.walk(rule.Destination, rule)
}

// walk is the depth-first, pre-order traversal over one rule. A matched child
// is removed wholesale and never descended into; an unmatched directory is
// recursed into so matching descendants at any depth are still found.
func (e *Engine) walk(dir string, rule types.Rule) []types.CleanResult {
	// The destination may have vanished mid-run, e.g. because an ancestor was
	// deleted by an outer call. Not an error.
	if _, err := os.Lstat(dir); err != nil {
		return nil
	}

	var results []types.CleanResult
	for _, child := range e.children(dir, rule.Exclude) {
		if matches(child, rule.Kind, rule.Patterns) {
			results = append(results, e.remove(child))
			continue
		}
		if info, err := os.Lstat(child); err == nil && info.IsDir() {
			results = append(results, e.walk(child, rule)...)
		}
	}
	return results
}

// children enumerates the direct entries of dir, suppressing excluded names.
// Listing failures are reported and degrade to a partial or empty result so a
// single unreadable subtree cannot abort the run.
func (e *Engine) children(dir string, exclude []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		e.printer.Failuref("reading directory %q: %v", dir, err)
		// entries may still hold the part that was read
	}

	var children []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isExcluded(entry.Name(), exclude) {
			e.printer.Excluded(path)
			continue
		}
		children = append(children, path)
	}
	return children
}

// remove reports intent and, outside dry-run, deletes the entry. The match
// decision has already been made; removal is unconditional.
func (e *Engine) remove(path string) types.CleanResult {
	e.printer.Removing(path)
	if e.dryRun {
		return types.CleanResult{Path: path, DryRun: true}
	}

	if err := e.removeEntry(path); err != nil {
		e.printer.Failure(err)
		return types.CleanResult{Path: path, Error: err}
	}
	e.printer.Removed(path)
	return types.CleanResult{Path: path, Removed: true}
}

// removeEntry deletes a single file, or a whole subtree for anything else.
func (e *Engine) removeEntry(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.Mode().IsRegular() {
		return e.deleter.Remove(path)
	}
	return e.deleter.RemoveAll(path)
}
