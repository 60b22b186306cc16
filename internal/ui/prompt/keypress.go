package prompt

import (
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/ta/internal/ui/styles"
)

type keyPressModel struct {
	message string
	done    bool
}

func (m keyPressModel) Init() tea.Cmd {
	return nil
}

func (m keyPressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m keyPressModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(styles.MutedStyle.Render(m.message))
}

// PressAnyKey shows message and blocks until any key is pressed.
func PressAnyKey(message string) error {
	_, err := run(keyPressModel{message: message})
	return err
}
