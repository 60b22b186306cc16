package cache

//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks

import "errors"

// ErrInputClosed is returned by prompters that can no longer read
// answers. The management loop treats it as exit.
var ErrInputClosed = errors.New("input closed")

// Choice is the outcome of a selection prompt.
type Choice struct {
	Index     int
	Cancelled bool
}

// Prompter is the operator-facing I/O used by the cache manager.
type Prompter interface {
	// Choose presents options and returns the chosen index, or a
	// cancelled Choice when the operator backs out.
	Choose(title string, options []string) (Choice, error)

	// Confirm asks a yes/no question. defaultYes selects the answer
	// used when the operator just presses enter.
	Confirm(question string, defaultYes bool) (bool, error)

	// Pause blocks until the operator acknowledges message.
	Pause(message string) error
}
