package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/output"
)

func newLine(input string) (*LinePrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewLinePrompter(strings.NewReader(input), &out), &out
}

func TestLinePrompter_Choose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    cache.Choice
		wantErr error
	}{
		{"number", "2\n", cache.Choice{Index: 1}, nil},
		{"retry after garbage", "x\n0\n3\n", cache.Choice{Index: 2}, nil},
		{"q cancels", "q\n", cache.Choice{Index: -1, Cancelled: true}, nil},
		{"eof closes input", "", cache.Choice{Index: -1, Cancelled: true}, cache.ErrInputClosed},
		{"eof after garbage", "x\n", cache.Choice{Index: -1, Cancelled: true}, cache.ErrInputClosed},
		{"last line without newline", "1", cache.Choice{Index: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newLine(tt.input)
			got, err := p.Choose("What would you like to do?", []string{"a", "b", "c"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Choose() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Choose() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLinePrompter_ChooseShowsMenu(t *testing.T) {
	t.Parallel()

	p, out := newLine("1\n")
	if _, err := p.Choose("Select cached ticker to DELETE:", []string{"AAPL (Market Data Only)", "← Back to Main Menu"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Select cached ticker to DELETE:", "  1) AAPL (Market Data Only)", "  2) ← Back to Main Menu"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLinePrompter_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"y", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"n", "n\n", true, false},
		{"empty takes default no", "\n", false, false},
		{"empty takes default yes", "\n", true, true},
		{"retry", "maybe\ny\n", false, true},
		{"eof is no", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newLine(tt.input)
			got, err := p.Confirm("Delete?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinePrompter_ConfirmHint(t *testing.T) {
	t.Parallel()

	p, out := newLine("\n")
	if _, err := p.Confirm("Are you sure you want to DELETE all cached data for TSLA?", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "TSLA? [y/N]") {
		t.Errorf("destructive confirmation must show a no default, got %q", out.String())
	}
}

func TestLinePrompter_Text(t *testing.T) {
	t.Parallel()

	validate := func(s string) error {
		if s == "bad" {
			return os.ErrInvalid
		}
		return nil
	}

	p, out := newLine("bad\n\n")
	got, ok, err := p.Text("Ticker:", "SPY", validate)
	if err != nil || !ok {
		t.Fatalf("Text() = %q, %v, %v", got, ok, err)
	}
	if got != "SPY" {
		t.Errorf("Text() = %q, want placeholder SPY", got)
	}
	if !strings.Contains(out.String(), os.ErrInvalid.Error()) {
		t.Errorf("validation error not shown:\n%s", out.String())
	}

	p, _ = newLine("")
	if _, ok, err := p.Text("Ticker:", "SPY", nil); ok || err != nil {
		t.Errorf("eof should cancel, got ok=%v err=%v", ok, err)
	}
}

func TestLinePrompter_Select(t *testing.T) {
	t.Parallel()

	opts := []string{"Shallow", "Medium", "Deep"}

	p, _ := newLine("\n")
	if i, ok, _ := p.Select("Depth", opts, 2); !ok || i != 2 {
		t.Errorf("empty answer = %d, %v; want initial 2", i, ok)
	}

	p, _ = newLine("4\n1\n")
	if i, ok, _ := p.Select("Depth", opts, 0); !ok || i != 0 {
		t.Errorf("Select() = %d, %v; want 0", i, ok)
	}

	p, _ = newLine("q\n")
	if _, ok, _ := p.Select("Depth", opts, 0); ok {
		t.Error("q should cancel")
	}
}

func TestLinePrompter_MultiSelect(t *testing.T) {
	t.Parallel()

	opts := []string{"Market", "Social", "News", "Fundamentals"}

	tests := []struct {
		name   string
		input  string
		presel []int
		want   []int
		ok     bool
	}{
		{"list", "4, 1\n", nil, []int{0, 3}, true},
		{"duplicates", "2,2\n", nil, []int{1}, true},
		{"default", "\n", []int{2, 0}, []int{2, 0}, true},
		{"all", "a\n", nil, []int{0, 1, 2, 3}, true},
		{"retry below minimum", "\n3\n", nil, []int{2}, true},
		{"retry out of range", "5\n1\n", nil, []int{0}, true},
		{"eof", "", []int{1}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newLine(tt.input)
			got, ok, err := p.MultiSelect("Analysts", opts, tt.presel, 1)
			if err != nil {
				t.Fatalf("MultiSelect() error = %v", err)
			}
			if ok != tt.ok || !slices.Equal(got, tt.want) {
				t.Errorf("MultiSelect() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLinePrompter_DrivesCacheManager(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "TSLA"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "AAPL-YFin-data-2024.csv"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// delete, pick AAPL, confirm, acknowledge, continue
	p, _ := newLine("1\n1\ny\n\n2\n")
	var shown bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &shown)

	proceed, err := cache.NewManager(root, p).Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !proceed {
		t.Error("continue should proceed")
	}
	if _, err := os.Stat(filepath.Join(root, "AAPL-YFin-data-2024.csv")); !os.IsNotExist(err) {
		t.Error("AAPL legacy file should be deleted")
	}
	if !strings.Contains(shown.String(), "Successfully deleted file for AAPL") {
		t.Errorf("missing outcome message:\n%s", shown.String())
	}
	if !strings.Contains(shown.String(), "Found 1 cached tickers:") {
		t.Errorf("inventory not rescanned after delete:\n%s", shown.String())
	}
}

func TestLinePrompter_EOFExitsManager(t *testing.T) {
	t.Parallel()

	p, _ := newLine("")
	ctx := output.WithPrinter(context.Background(), &bytes.Buffer{})
	proceed, err := cache.NewManager(t.TempDir(), p).Run(ctx)
	if err != nil || proceed {
		t.Errorf("Run() = %v, %v; want false, nil", proceed, err)
	}
}

func TestLinePrompter_CancelledMenuKeepsLooping(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "TSLA"), 0o755); err != nil {
		t.Fatal(err)
	}

	// cancel the action menu, acknowledge, continue
	p, _ := newLine("q\n\n2\n")
	var shown bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &shown)

	proceed, err := cache.NewManager(root, p).Run(ctx)
	if err != nil || !proceed {
		t.Fatalf("Run() = %v, %v; want true, nil", proceed, err)
	}
	if n := strings.Count(shown.String(), "Found 1 cached tickers:"); n != 2 {
		t.Errorf("inventory shown %d times, want 2:\n%s", n, shown.String())
	}
}
