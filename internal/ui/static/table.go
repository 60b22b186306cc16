// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/ui/styles"
)

// InventoryHeaders are the column titles of the cache inventory table.
var InventoryHeaders = []string{"TICKER", "TYPE", "PATH"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			if col == 0 {
				return styles.AccentStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// InventoryRow formats a cache entry for [RenderTable] with
// [InventoryHeaders]. Paths wider than maxPath cells keep their tail,
// which holds the ticker; maxPath <= 0 disables shortening.
func InventoryRow(e cache.Entry, maxPath int) []string {
	return []string{e.Ticker, e.Layout.Summary(), ShortenPath(e.Path, maxPath)}
}

// ShortenPath drops leading cells so that path fits into width cells,
// marking the cut with an ellipsis.
func ShortenPath(path string, width int) string {
	w := ansi.StringWidth(path)
	if width <= 0 || w <= width {
		return path
	}
	if width == 1 {
		return "…"
	}
	return ansi.TruncateLeft(path, w-width+1, "…")
}
