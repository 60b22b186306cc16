package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
)

// Action is a choice offered by the management menu.
type Action string

const (
	ActionDelete   Action = "delete"
	ActionContinue Action = "continue"
	ActionExit     Action = "exit"
)

// menu lists the management actions in display order.
var menu = []struct {
	action Action
	label  string
}{
	{ActionDelete, "Delete cached ticker data"},
	{ActionContinue, "Continue to new analysis"},
	{ActionExit, "Exit"},
}

const (
	menuTitle    = "What would you like to do?"
	pauseMessage = "Press any key to continue..."
)

type state int

const (
	stateScanning state = iota
	stateDisplaying
	stateAwaitingAction
)

func (s state) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateDisplaying:
		return "displaying"
	default:
		return "awaiting-action"
	}
}

// Manager runs the interactive cache management loop.
type Manager struct {
	scanner  *Scanner
	deleter  *Deleter
	prompter Prompter
}

// NewManager creates a manager for the cache at root.
func NewManager(root string, p Prompter) *Manager {
	return &Manager{
		scanner:  NewScanner(root),
		deleter:  NewDeleter(root, p),
		prompter: p,
	}
}

// Run drives the loop until the operator continues or exits.
// It returns true for "continue to analysis" and false for "exit".
// A prompter reporting ErrInputClosed also ends the loop with false.
// Scan and deletion failures are reported and never end the loop;
// an error is returned only when prompting fails or ctx is done.
func (m *Manager) Run(ctx context.Context) (bool, error) {
	proceed, err := m.run(ctx)
	if errors.Is(err, ErrInputClosed) {
		log.FromContext(ctx).Debug("cache manager", "input", "closed")
		return false, nil
	}
	return proceed, err
}

func (m *Manager) run(ctx context.Context) (bool, error) {
	l := log.FromContext(ctx)

	var inventory []Entry
	st := stateScanning

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		l.Debug("cache manager", "state", st.String())

		switch st {
		case stateScanning:
			inventory = m.scan(ctx)
			st = stateDisplaying

		case stateDisplaying:
			m.display(ctx, inventory)
			st = stateAwaitingAction

		case stateAwaitingAction:
			action, err := m.awaitAction()
			if err != nil {
				return false, err
			}

			rescan := true
			switch action {
			case ActionContinue:
				return true, nil
			case ActionExit:
				return false, nil
			case ActionDelete:
				rescan, err = m.handleDelete(ctx, inventory)
				if err != nil {
					return false, err
				}
			}
			if err := m.prompter.Pause(pauseMessage); err != nil {
				return false, err
			}
			if rescan {
				// Never reuse a stale inventory.
				inventory = nil
				st = stateScanning
			}
		}
	}
}

func (m *Manager) scan(ctx context.Context) []Entry {
	inventory, err := m.scanner.Scan(ctx)
	if err != nil {
		log.FromContext(ctx).Printf("Warning: %v\n", err)
		return nil
	}
	return inventory
}

func (m *Manager) display(ctx context.Context, inventory []Entry) {
	out := output.FromContext(ctx)

	out.Println()
	out.Println("Data Cache Management")
	out.Printf("Found %d cached tickers:\n", len(inventory))
	if len(inventory) == 0 {
		out.Println("  No cached data found")
		return
	}
	for _, e := range inventory {
		out.Printf("  • %s (%s)\n", e.Ticker, e.Layout.Summary())
	}
}

// awaitAction shows the action menu. A cancelled menu yields an empty
// Action, which pauses and rescans like any other non-terminal turn.
func (m *Manager) awaitAction() (Action, error) {
	labels := make([]string, len(menu))
	for i, item := range menu {
		labels[i] = item.label
	}

	choice, err := m.prompter.Choose(menuTitle, labels)
	if err != nil {
		return "", fmt.Errorf("action menu: %w", err)
	}
	if choice.Cancelled || choice.Index < 0 || choice.Index >= len(menu) {
		return "", nil
	}
	return menu[choice.Index].action, nil
}

// handleDelete runs one delete turn. It reports whether the inventory
// must be rescanned, which is the case whenever the deleter ran.
func (m *Manager) handleDelete(ctx context.Context, inventory []Entry) (bool, error) {
	if len(inventory) == 0 {
		output.FromContext(ctx).Println("\nNo cached data to delete.")
		return false, nil
	}

	entry, err := SelectForDeletion(m.prompter, inventory)
	if err != nil {
		return false, fmt.Errorf("select entry: %w", err)
	}
	if entry == nil {
		return false, nil
	}

	res := m.deleter.Delete(ctx, *entry)
	log.FromContext(ctx).Debug("delete turn", "ticker", res.Entry.Ticker, "outcome", res.Outcome.String())
	return true, nil
}
