// Package config handles loading and validation of ta configuration.
//
// Configuration is read from ~/.config/ta/config.toml.
//
// # Configuration Sources (highest priority first)
//
//   - --cache-dir flag
//   - TA_CACHE_DIR env var
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - cache_dir: Root of the per-ticker data cache (must be absolute or ~/...)
//   - theme: Prompt color theme ("default", "dracula", "nord", "none")
//   - [analysis]: Defaults preselected in the analysis prompts
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
