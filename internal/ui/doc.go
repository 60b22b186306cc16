// Package ui connects the cache manager and the parameter prompts to
// the terminal.
//
// Two implementations of [cache.Prompter] and [params.Asker] exist:
//
//   - [TerminalPrompter]: bubbletea prompts from the prompt package,
//     used when stdin is a terminal
//   - [LinePrompter]: numbered menus read line by line, used for piped
//     input and scripted sessions
//
// [NewPrompter] picks one based on the input file descriptor.
//
// Subpackages:
//   - prompt: standalone bubbletea prompts
//   - static: non-interactive tables
//   - styles: shared colors and the theme presets
package ui
