package cache

import (
	"bytes"
	"context"
	"errors"

	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPrompter replays canned answers and records every prompt.
type scriptedPrompter struct {
	choices  []Choice
	confirms []bool

	// onChoose runs before each Choose call returns.
	onChoose func(title string)
	// closeWhenDone reports ErrInputClosed instead of
	// errScriptExhausted once choices run out.
	closeWhenDone bool

	titles    []string
	options   [][]string
	questions []string
	defaults  []bool
	pauses    int
}

func (s *scriptedPrompter) Choose(title string, options []string) (Choice, error) {
	s.titles = append(s.titles, title)
	s.options = append(s.options, options)
	if s.onChoose != nil {
		s.onChoose(title)
	}
	if len(s.choices) == 0 {
		if s.closeWhenDone {
			return Choice{Index: -1, Cancelled: true}, ErrInputClosed
		}
		return Choice{}, errScriptExhausted
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c, nil
}

func (s *scriptedPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	s.questions = append(s.questions, question)
	s.defaults = append(s.defaults, defaultYes)
	if len(s.confirms) == 0 {
		return false, errScriptExhausted
	}
	c := s.confirms[0]
	s.confirms = s.confirms[1:]
	return c, nil
}

func (s *scriptedPrompter) Pause(string) error {
	s.pauses++
	return nil
}

func pick(i int) Choice { return Choice{Index: i} }

var backOut = Choice{Index: -1, Cancelled: true}

// Indices into the action menu.
var (
	chooseDelete   = pick(0)
	chooseContinue = pick(1)
	chooseExit     = pick(2)
)

// testContext returns a context whose printer writes to the returned buffer.
func testContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)
	ctx = log.WithLogger(ctx, log.New(&buf, false, false))
	return ctx, &buf
}
