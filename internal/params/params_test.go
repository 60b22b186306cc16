package params

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/raphi011/ta/internal/config"
)

type textAnswer struct {
	value string
	ok    bool
}

type selectAnswer struct {
	index int
	ok    bool
}

// fakeAsker answers prompts from queues and records what it was offered.
type fakeAsker struct {
	texts   []textAnswer
	selects []selectAnswer
	multi   []int
	multiOK bool
	err     error

	placeholders []string
	initials     []int
	preselected  []int
}

func (f *fakeAsker) Text(prompt, placeholder string, validate func(string) error) (string, bool, error) {
	f.placeholders = append(f.placeholders, placeholder)
	if f.err != nil {
		return "", false, f.err
	}
	a := f.texts[0]
	f.texts = f.texts[1:]
	if a.value == "" {
		a.value = placeholder
	}
	return a.value, a.ok, nil
}

func (f *fakeAsker) Select(prompt string, options []string, initial int) (int, bool, error) {
	f.initials = append(f.initials, initial)
	a := f.selects[0]
	f.selects = f.selects[1:]
	return a.index, a.ok, nil
}

func (f *fakeAsker) MultiSelect(prompt string, options []string, preselected []int, minSelect int) ([]int, bool, error) {
	f.preselected = preselected
	return f.multi, f.multiOK, nil
}

var now = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func TestCollect(t *testing.T) {
	t.Parallel()

	a := &fakeAsker{
		texts:   []textAnswer{{" nvda ", true}, {"2024-05-01", true}},
		multi:   []int{3, 0},
		multiOK: true,
		selects: []selectAnswer{{1, true}, {0, true}, {5, true}},
	}

	got, err := Collect(a, Selections{}, now)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := Selections{
		Ticker:        "NVDA",
		Date:          "2024-05-01",
		Analysts:      []string{"market", "fundamentals"},
		ResearchDepth: 3,
		QuickModel:    "gpt-4o-mini",
		DeepModel:     "o3",
	}
	if got.Ticker != want.Ticker || got.Date != want.Date || got.ResearchDepth != want.ResearchDepth ||
		got.QuickModel != want.QuickModel || got.DeepModel != want.DeepModel {
		t.Errorf("Collect() = %+v, want %+v", got, want)
	}
	if !slices.Equal(got.Analysts, want.Analysts) {
		t.Errorf("Analysts = %v, want %v", got.Analysts, want.Analysts)
	}
}

func TestCollect_Defaults(t *testing.T) {
	t.Parallel()

	a := &fakeAsker{
		texts:   []textAnswer{{"", true}, {"", true}},
		multi:   []int{0},
		multiOK: true,
		selects: []selectAnswer{{2, true}, {3, true}, {3, true}},
	}
	defaults := FromConfig(config.Default().Analysis).Merge(Selections{
		Analysts:   []string{"news", "social"},
		DeepModel:  "o3-mini",
		QuickModel: "gpt-4o",
	})

	got, err := Collect(a, defaults, now)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if !slices.Equal(a.placeholders, []string{"SPY", "2024-05-10"}) {
		t.Errorf("placeholders = %v, want [SPY 2024-05-10]", a.placeholders)
	}
	if !slices.Equal(a.preselected, []int{2, 1}) {
		t.Errorf("preselected = %v, want [2 1]", a.preselected)
	}
	// depth 1, gpt-4o, o3-mini
	if !slices.Equal(a.initials, []int{0, 3, 4}) {
		t.Errorf("initials = %v, want [0 3 4]", a.initials)
	}
	if got.Ticker != "SPY" || got.Date != "2024-05-10" {
		t.Errorf("got ticker %q date %q", got.Ticker, got.Date)
	}
}

func TestCollect_Aborted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		asker *fakeAsker
	}{
		{"ticker", &fakeAsker{texts: []textAnswer{{"", false}}}},
		{"date", &fakeAsker{texts: []textAnswer{{"AAPL", true}, {"", false}}}},
		{"analysts", &fakeAsker{texts: []textAnswer{{"AAPL", true}, {"", true}}}},
		{"depth", &fakeAsker{
			texts:   []textAnswer{{"AAPL", true}, {"", true}},
			multi:   []int{0},
			multiOK: true,
			selects: []selectAnswer{{0, false}},
		}},
		{"deep model", &fakeAsker{
			texts:   []textAnswer{{"AAPL", true}, {"", true}},
			multi:   []int{0},
			multiOK: true,
			selects: []selectAnswer{{0, true}, {0, true}, {0, false}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Collect(tt.asker, Selections{}, now)
			if !errors.Is(err, ErrAborted) {
				t.Errorf("Collect() error = %v, want ErrAborted", err)
			}
		})
	}
}

func TestCollect_PromptError(t *testing.T) {
	t.Parallel()

	boom := errors.New("tty closed")
	_, err := Collect(&fakeAsker{err: boom}, Selections{}, now)
	if !errors.Is(err, boom) {
		t.Errorf("Collect() error = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrAborted) {
		t.Error("prompt failures are not aborts")
	}
}

func TestCollect_EmptyAnalystsRejected(t *testing.T) {
	t.Parallel()

	a := &fakeAsker{texts: []textAnswer{{"AAPL", true}, {"", true}}, multiOK: true}
	if _, err := Collect(a, Selections{}, now); err == nil {
		t.Error("expected error when no analyst is selected")
	}
}

func TestValidateTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"AAPL", false},
		{" spy ", false},
		{"BRK.B", false},
		{"RDS-A", false},
		{"", true},
		{"   ", true},
		{"1ABC", true},
		{"TOO LONG", true},
		{"ABCDEFGHIJK", true},
	}
	for _, tt := range tests {
		if err := ValidateTicker(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ValidateTicker(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestValidateDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-05-10", false},
		{" 2024-02-29 ", false},
		{"2023-02-29", true},
		{"2024-5-10", true},
		{"10/05/2024", true},
		{"", true},
	}
	for _, tt := range tests {
		if err := ValidateDate(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestLastRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), LastRunFile)

	got, err := LoadLast(path)
	if err != nil {
		t.Fatalf("LoadLast() on missing file error = %v", err)
	}
	if got.Ticker != "" {
		t.Errorf("missing file should yield zero selections, got %+v", got)
	}

	want := Selections{Ticker: "TSLA", Date: "2024-05-10", Analysts: []string{"news"}, ResearchDepth: 5}
	if err := SaveLast(path, want); err != nil {
		t.Fatalf("SaveLast() error = %v", err)
	}
	got, err = LoadLast(path)
	if err != nil {
		t.Fatalf("LoadLast() error = %v", err)
	}
	if got.Ticker != want.Ticker || got.ResearchDepth != 5 || !slices.Equal(got.Analysts, want.Analysts) {
		t.Errorf("LoadLast() = %+v, want %+v", got, want)
	}
}
