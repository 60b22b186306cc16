// Package log provides context-aware logging for ta.
//
// Printf and Println write operator-facing diagnostics (warnings, notes)
// and are silenced by --quiet. Debug writes structured zerolog lines and
// only appears with --verbose.
package log

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Logger writes diagnostics to stderr.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	zl      zerolog.Logger
}

// New creates a new logger. quiet overrides verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := zerolog.Disabled
	if verbose && !quiet {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return &Logger{
		out:     out,
		verbose: verbose,
		quiet:   quiet,
		zl:      zerolog.New(console).Level(level),
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug logs msg with key-value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if len(keyvals)%2 == 1 {
		keyvals = keyvals[:len(keyvals)-1]
	}
	l.zl.Debug().Fields(keyvals).Msg(msg)
}

// IsVerbose returns true if debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
