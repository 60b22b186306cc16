// Package report stores finished analysis reports in the data cache.
//
// Reports are written to <cache_dir>/<TICKER>/, which is the
// directory layout the cache manager lists as "Full Analysis Data".
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raphi011/ta/internal/log"
)

// Save writes body as a Markdown report for ticker and date below root
// and returns the report path. now stamps the file name and header.
func Save(ctx context.Context, root, ticker, date, body string, now time.Time) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" || strings.ContainsAny(ticker, `/\`) || ticker == "." || ticker == ".." {
		return "", fmt.Errorf("invalid ticker %q", ticker)
	}

	dir := filepath.Join(root, ticker)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create ticker dir: %w", err)
	}

	name := fmt.Sprintf("%s_analysis_%s_%s.md", ticker, date, now.Format("150405"))
	path := filepath.Join(dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Trading Analysis Report\n\n", ticker)
	fmt.Fprintf(&b, "**Analysis Date:** %s\n", date)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("---\n\n")
	b.WriteString(body)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	log.FromContext(ctx).Debug("report saved", "ticker", ticker, "path", path)
	return path, nil
}
