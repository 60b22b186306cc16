// Package params collects the parameters of an analysis run.
//
// [Collect] walks the operator through ticker, date, analyst team,
// research depth and the two LLM engines. The prompts themselves are
// behind [Asker] so the terminal UI and the line-based fallback share
// the same flow. The last answers are stored under ~/.ta and offered
// as defaults next time.
package params

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/raphi011/ta/internal/config"
)

// ErrAborted is returned when the operator cancels any prompt.
var ErrAborted = errors.New("analysis aborted")

// DateLayout is the accepted analysis date format.
const DateLayout = "2006-01-02"

const defaultTicker = "SPY"

var tickerPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// Option is a labeled choice in a select prompt.
type Option[T comparable] struct {
	Label string
	Value T
}

// Choices offered by the prompts, in display order.
var (
	AnalystOptions = []Option[string]{
		{"Market Analyst", "market"},
		{"Social Media Analyst", "social"},
		{"News Analyst", "news"},
		{"Fundamentals Analyst", "fundamentals"},
	}

	DepthOptions = []Option[int]{
		{"Shallow - Quick research, few debate and strategy discussion rounds", 1},
		{"Medium - Middle ground, moderate debate rounds and strategy discussion", 3},
		{"Deep - Comprehensive research, in depth debate and strategy discussion", 5},
	}

	QuickModelOptions = []Option[string]{
		{"GPT-4o-mini - Fast and efficient for quick tasks", "gpt-4o-mini"},
		{"GPT-4.1-nano - Ultra-lightweight model for basic operations", "gpt-4.1-nano"},
		{"GPT-4.1-mini - Compact model with good performance", "gpt-4.1-mini"},
		{"GPT-4o - Standard model with solid capabilities", "gpt-4o"},
	}

	DeepModelOptions = []Option[string]{
		{"GPT-4.1-nano - Ultra-lightweight model for basic operations", "gpt-4.1-nano"},
		{"GPT-4.1-mini - Compact model with good performance", "gpt-4.1-mini"},
		{"GPT-4o - Standard model with solid capabilities", "gpt-4o"},
		{"o4-mini - Specialized reasoning model (compact)", "o4-mini"},
		{"o3-mini - Advanced reasoning model (lightweight)", "o3-mini"},
		{"o3 - Full advanced reasoning model", "o3"},
		{"o1 - Premier reasoning and problem-solving model", "o1"},
	}
)

// Selections are the answers of one run.
type Selections struct {
	Ticker        string   `json:"ticker" yaml:"ticker"`
	Date          string   `json:"analysis_date" yaml:"analysis_date"`
	Analysts      []string `json:"analysts" yaml:"analysts"`
	ResearchDepth int      `json:"research_depth" yaml:"research_depth"`
	QuickModel    string   `json:"quick_model" yaml:"quick_model"`
	DeepModel     string   `json:"deep_model" yaml:"deep_model"`
}

// FromConfig returns the configured prompt defaults.
func FromConfig(cfg config.AnalysisConfig) Selections {
	return Selections{
		Analysts:      slices.Clone(cfg.Analysts),
		ResearchDepth: cfg.ResearchDepth,
		QuickModel:    cfg.QuickModel,
		DeepModel:     cfg.DeepModel,
	}
}

// Merge returns s with every non-zero field of o applied on top.
func (s Selections) Merge(o Selections) Selections {
	if o.Ticker != "" {
		s.Ticker = o.Ticker
	}
	if o.Date != "" {
		s.Date = o.Date
	}
	if len(o.Analysts) > 0 {
		s.Analysts = slices.Clone(o.Analysts)
	}
	if o.ResearchDepth != 0 {
		s.ResearchDepth = o.ResearchDepth
	}
	if o.QuickModel != "" {
		s.QuickModel = o.QuickModel
	}
	if o.DeepModel != "" {
		s.DeepModel = o.DeepModel
	}
	return s
}

// Asker renders the individual prompts. ok is false when the operator
// cancelled the prompt.
type Asker interface {
	Text(prompt, placeholder string, validate func(string) error) (value string, ok bool, err error)
	Select(prompt string, options []string, initial int) (index int, ok bool, err error)
	MultiSelect(prompt string, options []string, preselected []int, minSelect int) (indices []int, ok bool, err error)
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateTicker reports whether s is a usable ticker symbol.
func ValidateTicker(s string) error {
	t := NormalizeTicker(s)
	if t == "" {
		return errors.New("please enter a valid ticker symbol")
	}
	if !tickerPattern.MatchString(t) {
		return fmt.Errorf("invalid ticker symbol %q", t)
	}
	return nil
}

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil || len(s) != len(DateLayout) {
		return errors.New("please enter a valid date in YYYY-MM-DD format")
	}
	return nil
}

// Collect asks for every parameter in turn, starting from defaults.
// An empty default date means today.
func Collect(a Asker, defaults Selections, now time.Time) (Selections, error) {
	var s Selections

	placeholder := defaults.Ticker
	if placeholder == "" {
		placeholder = defaultTicker
	}
	ticker, ok, err := a.Text("Enter the ticker symbol to analyze:", placeholder, ValidateTicker)
	if err := check(ok, err, "ticker"); err != nil {
		return s, err
	}
	s.Ticker = NormalizeTicker(ticker)

	date := defaults.Date
	if date == "" {
		date = now.Format(DateLayout)
	}
	date, ok, err = a.Text("Enter the analysis date (YYYY-MM-DD):", date, ValidateDate)
	if err := check(ok, err, "analysis date"); err != nil {
		return s, err
	}
	s.Date = strings.TrimSpace(date)

	var preselected []int
	for _, v := range defaults.Analysts {
		if i := indexOf(AnalystOptions, v); i >= 0 {
			preselected = append(preselected, i)
		}
	}
	picked, ok, err := a.MultiSelect("Select your analysts team:", labels(AnalystOptions), preselected, 1)
	if err := check(ok, err, "analysts"); err != nil {
		return s, err
	}
	if len(picked) == 0 {
		return s, errors.New("you must select at least one analyst")
	}
	slices.Sort(picked)
	for _, i := range picked {
		s.Analysts = append(s.Analysts, AnalystOptions[i].Value)
	}

	if s.ResearchDepth, err = selectValue(a, "Select your research depth:", DepthOptions, defaults.ResearchDepth); err != nil {
		return s, err
	}
	if s.QuickModel, err = selectValue(a, "Select your quick-thinking LLM engine:", QuickModelOptions, defaults.QuickModel); err != nil {
		return s, err
	}
	if s.DeepModel, err = selectValue(a, "Select your deep-thinking LLM engine:", DeepModelOptions, defaults.DeepModel); err != nil {
		return s, err
	}
	return s, nil
}

func selectValue[T comparable](a Asker, prompt string, opts []Option[T], def T) (T, error) {
	var zero T
	initial := max(indexOf(opts, def), 0)
	i, ok, err := a.Select(prompt, labels(opts), initial)
	if err := check(ok, err, prompt); err != nil {
		return zero, err
	}
	if i < 0 || i >= len(opts) {
		return zero, ErrAborted
	}
	return opts[i].Value, nil
}

func check(ok bool, err error, what string) error {
	if err != nil {
		return fmt.Errorf("prompt %s: %w", what, err)
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

func indexOf[T comparable](opts []Option[T], v T) int {
	return slices.IndexFunc(opts, func(o Option[T]) bool { return o.Value == v })
}

func labels[T comparable](opts []Option[T]) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
