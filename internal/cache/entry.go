package cache

import "fmt"

// Layout identifies how an entry is stored on disk.
type Layout int

const (
	// LayoutDirectory is a per-ticker directory with full analysis data.
	LayoutDirectory Layout = iota
	// LayoutLegacyFile is a single market-data CSV from the old flat layout.
	LayoutLegacyFile
)

// String returns the short layout name used in JSON/YAML output.
func (l Layout) String() string {
	switch l {
	case LayoutDirectory:
		return "directory"
	case LayoutLegacyFile:
		return "file"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Summary is the layout description shown in the inventory overview.
func (l Layout) Summary() string {
	if l == LayoutDirectory {
		return "Full Analysis"
	}
	return "Market Data"
}

// Description is the layout description shown when picking an entry.
func (l Layout) Description() string {
	if l == LayoutDirectory {
		return "Full Analysis Data"
	}
	return "Market Data Only"
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Entry is one ticker in the cache inventory.
type Entry struct {
	Ticker string `json:"ticker" yaml:"ticker"`
	Layout Layout `json:"layout" yaml:"layout"`
	Path   string `json:"path" yaml:"path"` // absolute path removed to purge the entry
}

// Label returns the selection label, e.g. "AAPL (Full Analysis Data)".
func (e Entry) Label() string {
	return fmt.Sprintf("%s (%s)", e.Ticker, e.Layout.Description())
}

// kind is the noun used in deletion messages.
func (e Entry) kind() string {
	if e.Layout == LayoutDirectory {
		return "directory"
	}
	return "file"
}
