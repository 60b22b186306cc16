// Package prompt provides simple interactive prompts.
//
// Every prompt is a small bubbletea program rendering to stderr, so
// stdout stays free for command output.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt with a configurable default
//   - [TextInput]: Single-line text input with optional validation
//   - [Select]: Single selection from a list
//   - [MultiSelect]: Fuzzy-filtered checkbox list
//   - [PressAnyKey]: Waits for a single key press
package prompt
