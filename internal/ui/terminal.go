package ui

import (
	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/ui/prompt"
	"github.com/raphi011/ta/internal/ui/styles"
)

// TerminalPrompter renders prompts as interactive terminal programs.
type TerminalPrompter struct{}

// Choose shows a list selection.
func (TerminalPrompter) Choose(title string, options []string) (cache.Choice, error) {
	res, err := prompt.Select(title, options, 0)
	if err != nil {
		return cache.Choice{}, err
	}
	if res.Cancelled {
		return cache.Choice{Index: -1, Cancelled: true}, nil
	}
	return cache.Choice{Index: res.Index}, nil
}

// Confirm asks a yes/no question. A cancelled prompt counts as "no".
func (TerminalPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	if !defaultYes {
		question = styles.WarningStyle.Render(question)
	}
	res, err := prompt.Confirm(question, defaultYes)
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

// Pause waits for any key.
func (TerminalPrompter) Pause(message string) error {
	return prompt.PressAnyKey("\n" + message)
}

// Text asks for a single line of input.
func (TerminalPrompter) Text(title, placeholder string, validate func(string) error) (string, bool, error) {
	res, err := prompt.TextInput(title, placeholder, validate)
	if err != nil {
		return "", false, err
	}
	return res.Value, !res.Cancelled, nil
}

// Select shows a list selection starting at initial.
func (TerminalPrompter) Select(title string, options []string, initial int) (int, bool, error) {
	res, err := prompt.Select(title, options, initial)
	if err != nil {
		return -1, false, err
	}
	return res.Index, !res.Cancelled, nil
}

// MultiSelect shows a fuzzy-filtered checkbox list.
func (TerminalPrompter) MultiSelect(title string, options []string, preselected []int, minSelect int) ([]int, bool, error) {
	res, err := prompt.MultiSelect(title, options, preselected, minSelect)
	if err != nil {
		return nil, false, err
	}
	return res.Indices, !res.Cancelled, nil
}
