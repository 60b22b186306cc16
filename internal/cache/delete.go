package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
)

// ErrOutsideRoot is returned for entries whose path is not directly
// inside the cache root.
var ErrOutsideRoot = errors.New("path is outside the cache directory")

// Outcome is the result kind of a deletion attempt.
type Outcome int

const (
	OutcomeDeleted Outcome = iota
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDeleted:
		return "deleted"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes what happened to one entry.
type Result struct {
	Entry   Entry
	Outcome Outcome
	Err     error // set when Outcome is OutcomeFailed
}

// Reason returns a human-readable cause for a failed deletion.
func (r Result) Reason() string {
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, fs.ErrNotExist):
		return "path no longer exists: " + r.Entry.Path
	case errors.Is(r.Err, fs.ErrPermission):
		return "permission denied: " + r.Entry.Path
	default:
		return r.Err.Error()
	}
}

// Message is the operator-facing report line for the result.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeDeleted:
		return fmt.Sprintf("Successfully deleted %s for %s", r.Entry.kind(), r.Entry.Ticker)
	case OutcomeCancelled:
		return fmt.Sprintf("Deletion cancelled for %s", r.Entry.Ticker)
	default:
		return fmt.Sprintf("Error deleting %s: %s", r.Entry.Ticker, r.Reason())
	}
}

// Deleter removes cache entries below a single root.
type Deleter struct {
	root     string
	prompter Prompter
}

// NewDeleter creates a deleter restricted to entries inside root.
func NewDeleter(root string, p Prompter) *Deleter {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Deleter{root: filepath.Clean(root), prompter: p}
}

// Delete asks for confirmation and removes entry. The confirmation
// defaults to "no"; a prompt failure counts as declining.
func (d *Deleter) Delete(ctx context.Context, entry Entry) Result {
	l := log.FromContext(ctx)

	question := fmt.Sprintf("Are you sure you want to DELETE all cached data for %s?", entry.Ticker)
	confirmed, err := d.prompter.Confirm(question, false)
	if err != nil {
		l.Debug("confirmation unavailable", "ticker", entry.Ticker, "error", err)
	}
	if err != nil || !confirmed {
		return d.report(ctx, Result{Entry: entry, Outcome: OutcomeCancelled})
	}

	return d.Purge(ctx, entry)
}

// Purge removes entry without asking.
func (d *Deleter) Purge(ctx context.Context, entry Entry) Result {
	log.FromContext(ctx).Debug("removing cache entry", "ticker", entry.Ticker, "layout", entry.Layout.String(), "path", entry.Path)

	if err := d.remove(entry); err != nil {
		return d.report(ctx, Result{Entry: entry, Outcome: OutcomeFailed, Err: err})
	}
	return d.report(ctx, Result{Entry: entry, Outcome: OutcomeDeleted})
}

func (d *Deleter) remove(entry Entry) error {
	path := filepath.Clean(entry.Path)
	if !filepath.IsAbs(path) || filepath.Dir(path) != d.root {
		return fmt.Errorf("%s: %w", entry.Path, ErrOutsideRoot)
	}

	// os.RemoveAll reports success for missing paths, so check first.
	if _, err := os.Lstat(path); err != nil {
		return err
	}

	switch entry.Layout {
	case LayoutDirectory:
		return os.RemoveAll(path)
	case LayoutLegacyFile:
		return os.Remove(path)
	default:
		return fmt.Errorf("unknown layout %s", entry.Layout)
	}
}

func (d *Deleter) report(ctx context.Context, r Result) Result {
	output.FromContext(ctx).Printf("\n%s\n", r.Message())
	return r
}
