package prompt

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/ta/internal/ui/styles"
)

// MultiSelectResult holds the result of a multi-selection prompt.
type MultiSelectResult struct {
	Indices   []int // selected option indices in option order
	Cancelled bool
}

type multiSelectModel struct {
	prompt    string
	options   []string
	matches   []fuzzy.Match
	cursor    int // position in matches
	selected  map[int]bool
	filter    string
	minSelect int
	done      bool
	cancelled bool
}

func newMultiSelectModel(prompt string, options []string, preselected []int, minSelect int) multiSelectModel {
	m := multiSelectModel{
		prompt:    prompt,
		options:   options,
		selected:  make(map[int]bool),
		minSelect: minSelect,
	}
	for _, idx := range preselected {
		if idx >= 0 && idx < len(options) {
			m.selected[idx] = true
		}
	}
	m.applyFilter()
	return m
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		if len(m.selected) >= m.minSelect {
			m.done = true
			return m, tea.Quit
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case "space":
		if len(m.matches) > 0 {
			idx := m.matches[m.cursor].Index
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
	case "ctrl+a":
		if len(m.selected) == len(m.options) {
			m.selected = make(map[int]bool)
		} else {
			for i := range m.options {
				m.selected[i] = true
			}
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	default:
		if key.Text != "" {
			m.filter += key.Text
			m.applyFilter()
		}
	}
	return m, nil
}

func (m *multiSelectModel) applyFilter() {
	if m.filter == "" {
		m.matches = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		// results are sorted by score, best first
		m.matches = fuzzy.Find(m.filter, m.options)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

// indices returns the selection in option order.
func (m multiSelectModel) indices() []int {
	var out []int
	for i := range m.options {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d selected)", m.prompt, len(m.selected))) + "\n")
	b.WriteString(styles.MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	for i, match := range m.matches {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.AccentStyle.Render("> ")
		}
		checkbox := "[ ]"
		if m.selected[match.Index] {
			checkbox = styles.SuccessStyle.Render("[✓]")
		}
		b.WriteString(cursor + checkbox + " " + highlight(match) + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}
	if len(m.selected) < m.minSelect {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Select at least %d", m.minSelect)) + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ move • space toggle • ctrl+a all • type to filter • enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// highlight renders match.Str with fuzzy-matched characters emphasized.
func highlight(match fuzzy.Match) string {
	if len(match.MatchedIndexes) == 0 {
		return match.Str
	}
	hit := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if hit[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MultiSelect shows a fuzzy-filtered checkbox list. Enter is accepted
// once at least minSelect options are checked.
func MultiSelect(prompt string, options []string, preselected []int, minSelect int) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{Cancelled: true}, nil
	}

	m, err := run(newMultiSelectModel(prompt, options, preselected, minSelect))
	if err != nil {
		return MultiSelectResult{}, err
	}
	if m.cancelled {
		return MultiSelectResult{Cancelled: true}, nil
	}
	return MultiSelectResult{Indices: m.indices()}, nil
}
