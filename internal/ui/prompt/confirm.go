package prompt

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/ta/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt     string
	defaultYes bool
	confirmed  bool
	done       bool
	cancelled  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.confirmed = m.defaultYes
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) hint() string {
	if m.defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s ", styles.Bold.Render(m.prompt), styles.MutedStyle.Render(m.hint())))
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Pressing enter without input picks defaultYes.
func Confirm(prompt string, defaultYes bool) (ConfirmResult, error) {
	m, err := run(confirmModel{prompt: prompt, defaultYes: defaultYes})
	if err != nil {
		return ConfirmResult{}, err
	}
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
