package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/raphi011/ta/internal/log"
)

// legacyFilePattern matches "<TICKER>-YFin-data-<suffix>.csv" against the
// whole file name. The ticker prefix is case-sensitive.
var legacyFilePattern = regexp.MustCompile(`^([A-Z]+)-YFin-data-.*\.csv$`)

// LegacyTicker returns the ticker encoded in a legacy CSV file name.
func LegacyTicker(name string) (string, bool) {
	m := legacyFilePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Scanner lists the entries of a single cache root.
type Scanner struct {
	root string
}

// NewScanner creates a scanner for root. Relative roots are resolved
// against the working directory so entry paths are always absolute.
func NewScanner(root string) *Scanner {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Scanner{root: filepath.Clean(root)}
}

// Root returns the absolute cache root.
func (s *Scanner) Root() string {
	return s.root
}

// Scan returns the current inventory sorted by ticker.
// A missing root yields an empty inventory and no error.
func (s *Scanner) Scan(ctx context.Context) ([]Entry, error) {
	l := log.FromContext(ctx)

	items, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Debug("cache root does not exist", "root", s.root)
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read cache dir %s: %w", s.root, err)
	}

	// os.ReadDir sorts by name, so for tickers that collide after
	// upper-casing the first name in byte order wins.
	byTicker := make(map[string]Entry, len(items))
	var legacy []Entry

	for _, item := range items {
		path := filepath.Join(s.root, item.Name())
		if s.isDir(item, path) {
			ticker := strings.ToUpper(item.Name())
			if _, seen := byTicker[ticker]; seen {
				l.Debug("skipping duplicate ticker directory", "path", path)
				continue
			}
			byTicker[ticker] = Entry{Ticker: ticker, Layout: LayoutDirectory, Path: path}
			continue
		}

		ticker, ok := LegacyTicker(item.Name())
		if !ok {
			continue
		}
		legacy = append(legacy, Entry{Ticker: ticker, Layout: LayoutLegacyFile, Path: path})
	}

	// Directories take precedence over legacy files with the same ticker.
	for _, e := range legacy {
		if existing, seen := byTicker[e.Ticker]; seen {
			l.Debug("legacy file shadowed", "ticker", e.Ticker, "path", e.Path, "by", existing.Layout.String())
			continue
		}
		byTicker[e.Ticker] = e
	}

	inventory := make([]Entry, 0, len(byTicker))
	for _, e := range byTicker {
		inventory = append(inventory, e)
	}
	slices.SortFunc(inventory, func(a, b Entry) int {
		return strings.Compare(a.Ticker, b.Ticker)
	})

	l.Debug("scanned cache", "root", s.root, "entries", len(inventory))
	return inventory, nil
}

// isDir reports whether item is a directory, following symlinks.
func (s *Scanner) isDir(item fs.DirEntry, path string) bool {
	if item.IsDir() {
		return true
	}
	if item.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
