package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvCacheDir overrides cache_dir from the config file.
const EnvCacheDir = "TA_CACHE_DIR"

// DefaultCacheDir is used when nothing else configures the cache root.
const DefaultCacheDir = "~/.cache/ta/data"

// AnalysisConfig holds defaults for the analysis parameter prompts.
type AnalysisConfig struct {
	Analysts      []string `toml:"analysts" json:"analysts" yaml:"analysts"`                   // preselected analyst team
	ResearchDepth int      `toml:"research_depth" json:"research_depth" yaml:"research_depth"` // 1, 3 or 5
	QuickModel    string   `toml:"quick_model" json:"quick_model" yaml:"quick_model"`          // quick-thinking LLM engine
	DeepModel     string   `toml:"deep_model" json:"deep_model" yaml:"deep_model"`             // deep-thinking LLM engine
}

// Config holds the ta configuration
type Config struct {
	CacheDir string         `toml:"cache_dir" json:"cache_dir" yaml:"cache_dir"`
	Theme    string         `toml:"theme" json:"theme" yaml:"theme"`
	Analysis AnalysisConfig `toml:"analysis" json:"analysis" yaml:"analysis"`
}

// Default returns the default configuration
func Default() Config {
	cacheDir, err := expandPath(DefaultCacheDir)
	if err != nil {
		cacheDir = filepath.Join(os.TempDir(), "ta", "data")
	}
	return Config{
		CacheDir: cacheDir,
		Theme:    "default",
		Analysis: AnalysisConfig{
			Analysts:      []string{"market", "social", "news", "fundamentals"},
			ResearchDepth: 1,
			QuickModel:    "gpt-4o-mini",
			DeepModel:     "o4-mini",
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ta", "config.toml"), nil
}

// Load reads config from ~/.config/ta/config.toml and applies TA_CACHE_DIR.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid; TA_CACHE_DIR is
// still applied on top of the defaults in that case.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return withEnv(Default())
	}
	cfg, fileErr := LoadFile(path)
	cfg, envErr := withEnv(cfg)
	return cfg, errors.Join(fileErr, envErr)
}

// LoadFile reads config from path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML config data, fills in defaults for unset values,
// validates and expands paths.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	defaultCacheDir := cfg.CacheDir
	cfg.CacheDir = ""

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.CacheDir, "cache_dir"); err != nil {
		return Default(), err
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	} else {
		expanded, err := expandPath(cfg.CacheDir)
		if err != nil {
			return Default(), fmt.Errorf("expand cache_dir: %w", err)
		}
		cfg.CacheDir = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// WithCacheDir returns cfg with the cache root overridden by dir,
// which must be absolute or start with ~. Relative paths are resolved
// against the working directory since they come from the command line.
func (c Config) WithCacheDir(dir string) (Config, error) {
	if dir == "" {
		return c, nil
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return c, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return c, fmt.Errorf("resolve cache dir: %w", err)
	}
	c.CacheDir = abs
	return c, nil
}

func withEnv(cfg Config) (Config, error) {
	dir := os.Getenv(EnvCacheDir)
	if dir == "" {
		return cfg, nil
	}
	if err := ValidatePath(dir, EnvCacheDir); err != nil {
		return cfg, err
	}
	return cfg.WithCacheDir(dir)
}

const defaultConfig = `# ta configuration

# Directory holding cached market and analysis data.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Can be overridden with the TA_CACHE_DIR environment variable or --cache-dir.
# cache_dir = "~/.cache/ta/data"

# Color theme for interactive prompts: default, dracula, nord, none
# theme = "default"

# Defaults preselected in the analysis prompts
[analysis]
# Analyst team: market, social, news, fundamentals
analysts = ["market", "social", "news", "fundamentals"]

# Research depth: 1 (shallow), 3 (medium), 5 (deep)
research_depth = 1

# Quick-thinking engine: gpt-4o-mini, gpt-4.1-nano, gpt-4.1-mini, gpt-4o
quick_model = "gpt-4o-mini"

# Deep-thinking engine: gpt-4.1-nano, gpt-4.1-mini, gpt-4o, o4-mini, o3-mini, o3, o1
deep_model = "o4-mini"
`

// Init creates a default config file at path.
// If force is true, overwrites existing file
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
