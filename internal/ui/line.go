package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/raphi011/ta/internal/cache"
)

// LinePrompter asks questions on a plain line-oriented stream.
// End of input cancels the pending prompt, except in menus, where it
// returns cache.ErrInputClosed so the management loop can stop.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. io.EOF is only returned when
// no more input is available at all.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) printMenu(title string, options []string) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
}

// number parses a 1-based menu answer.
func number(s string, n int) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// Choose prints a numbered menu. "q" cancels; end of input returns
// cache.ErrInputClosed.
func (p *LinePrompter) Choose(title string, options []string) (cache.Choice, error) {
	p.printMenu(title, options)
	for {
		fmt.Fprintf(p.out, "Choice [1-%d, q to cancel]: ", len(options))
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return cache.Choice{Index: -1, Cancelled: true}, cache.ErrInputClosed
		}
		if err != nil {
			return cache.Choice{}, err
		}
		if line == "q" {
			return cache.Choice{Index: -1, Cancelled: true}, nil
		}
		if i, ok := number(line, len(options)); ok {
			return cache.Choice{Index: i}, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

// Confirm asks a y/n question. An empty answer takes the default,
// end of input answers "no".
func (p *LinePrompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s ", question, hint)
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Pause prints message and consumes one line.
func (p *LinePrompter) Pause(message string) error {
	fmt.Fprintf(p.out, "\n%s", message)
	_, err := p.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return nil
	}
	return err
}

// Text asks for a value. An empty answer takes placeholder; invalid
// answers are reported and asked again.
func (p *LinePrompter) Text(title, placeholder string, validate func(string) error) (string, bool, error) {
	for {
		if placeholder != "" {
			fmt.Fprintf(p.out, "%s [%s] ", title, placeholder)
		} else {
			fmt.Fprintf(p.out, "%s ", title)
		}
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if line == "" {
			line = placeholder
		}
		if validate != nil {
			if err := validate(line); err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
		}
		return line, true, nil
	}
}

// Select prints a numbered menu; an empty answer picks initial.
func (p *LinePrompter) Select(title string, options []string, initial int) (int, bool, error) {
	p.printMenu(title, options)
	for {
		fmt.Fprintf(p.out, "Choice [%d]: ", initial+1)
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return -1, false, nil
		}
		if err != nil {
			return -1, false, err
		}
		if line == "" {
			return initial, true, nil
		}
		if line == "q" {
			return -1, false, nil
		}
		if i, ok := number(line, len(options)); ok {
			return i, true, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

// MultiSelect prints a numbered menu and reads a comma separated list
// of numbers; "a" selects everything and an empty answer keeps
// preselected.
func (p *LinePrompter) MultiSelect(title string, options []string, preselected []int, minSelect int) ([]int, bool, error) {
	p.printMenu(title, options)
	def := make([]string, len(preselected))
	for i, idx := range preselected {
		def[i] = strconv.Itoa(idx + 1)
	}
	for {
		fmt.Fprintf(p.out, "Numbers separated by commas, a for all [%s]: ", strings.Join(def, ","))
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}

		picked, ok := parseIndices(line, preselected, len(options))
		if !ok {
			fmt.Fprintf(p.out, "Please enter numbers between 1 and %d.\n", len(options))
			continue
		}
		if len(picked) < minSelect {
			fmt.Fprintf(p.out, "Select at least %d.\n", minSelect)
			continue
		}
		return picked, true, nil
	}
}

func parseIndices(line string, preselected []int, n int) ([]int, bool) {
	switch line {
	case "":
		return slices.Clone(preselected), true
	case "a":
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, true
	}

	var picked []int
	for _, field := range strings.Split(line, ",") {
		i, ok := number(strings.TrimSpace(field), n)
		if !ok {
			return nil, false
		}
		if !slices.Contains(picked, i) {
			picked = append(picked, i)
		}
	}
	slices.Sort(picked)
	return picked, true
}
