package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/ta/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		m.err = nil
	}
	return m, cmd
}

// value is the entered text, or the placeholder when nothing was typed.
func (m textInputModel) value() string {
	v := strings.TrimSpace(m.textInput.Value())
	if v == "" {
		return m.textInput.Placeholder
	}
	return v
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	s := fmt.Sprintf("%s\n%s", styles.TitleStyle.Render(m.prompt), m.textInput.View())
	if m.err != nil {
		s += "\n" + styles.ErrorStyle.Render(m.err.Error())
	}
	return tea.NewView(s)
}

func newTextInputModel(prompt, placeholder string, validate func(string) error) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
		validate:  validate,
	}
}

// TextInput shows a text input prompt and returns the user's input.
// An empty answer takes the placeholder. When validate is set, enter is
// only accepted once validate returns nil; its error is shown inline.
func TextInput(prompt, placeholder string, validate func(string) error) (TextInputResult, error) {
	m, err := run(newTextInputModel(prompt, placeholder, validate))
	if err != nil {
		return TextInputResult{}, err
	}
	return TextInputResult{
		Value:     m.value(),
		Cancelled: m.cancelled,
	}, nil
}
