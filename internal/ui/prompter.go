package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/params"
)

// Prompter is what the commands need from the UI.
type Prompter interface {
	cache.Prompter
	params.Asker
}

var (
	_ Prompter = TerminalPrompter{}
	_ Prompter = (*LinePrompter)(nil)
)

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewPrompter returns a [TerminalPrompter] when in is a terminal and a
// [LinePrompter] reading from in and writing to out otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if IsInteractive(in) {
		return TerminalPrompter{}
	}
	return NewLinePrompter(in, out)
}
