package main

import (
	"context"
	"os"

	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
	"github.com/raphi011/ta/internal/ui"
)

type prompterKey struct{}

// withPrompter makes commands use p instead of the terminal.
func withPrompter(ctx context.Context, p ui.Prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

// prompterFrom returns the injected prompter, or one for stdin with
// line-mode questions going to stderr.
func prompterFrom(ctx context.Context) ui.Prompter {
	if p, ok := ctx.Value(prompterKey{}).(ui.Prompter); ok {
		return p
	}
	return ui.NewPrompter(os.Stdin, os.Stderr)
}

// screenContext sends printer output to the logger's writer (stderr),
// keeping stdout free for command results while the cache manager runs.
func screenContext(ctx context.Context) context.Context {
	return output.WithPrinter(ctx, log.FromContext(ctx).Writer())
}
