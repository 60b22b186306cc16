package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !filepath.IsAbs(cfg.CacheDir) {
		t.Errorf("default cache_dir %q should be absolute", cfg.CacheDir)
	}
	if cfg.Theme != "default" {
		t.Errorf("theme = %q, want %q", cfg.Theme, "default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantDir   string
		wantDepth int
		wantErr   string
	}{
		{
			name:      "empty file uses defaults",
			data:      "",
			wantDir:   Default().CacheDir,
			wantDepth: 1,
		},
		{
			name:      "absolute cache dir",
			data:      `cache_dir = "/var/cache/ta"`,
			wantDir:   "/var/cache/ta",
			wantDepth: 1,
		},
		{
			name:      "tilde is expanded",
			data:      `cache_dir = "~/data/ta"`,
			wantDir:   filepath.Join(home, "data", "ta"),
			wantDepth: 1,
		},
		{
			name: "analysis section",
			data: `[analysis]
research_depth = 5
deep_model = "o3"`,
			wantDir:   Default().CacheDir,
			wantDepth: 5,
		},
		{
			name:    "relative cache dir rejected",
			data:    `cache_dir = "data"`,
			wantErr: "cache_dir must be absolute",
		},
		{
			name:    "invalid depth",
			data:    "[analysis]\nresearch_depth = 2",
			wantErr: "invalid analysis.research_depth 2",
		},
		{
			name:    "invalid analyst",
			data:    "[analysis]\nanalysts = [\"market\", \"crypto\"]",
			wantErr: `invalid analysis.analysts[1] "crypto"`,
		},
		{
			name:    "invalid quick model",
			data:    "[analysis]\nquick_model = \"o1\"",
			wantErr: `invalid analysis.quick_model "o1"`,
		},
		{
			name:    "invalid theme",
			data:    `theme = "solarized"`,
			wantErr: `invalid theme "solarized"`,
		},
		{
			name:    "malformed toml",
			data:    `cache_dir = `,
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				if cfg.CacheDir != Default().CacheDir {
					t.Errorf("invalid config should fall back to defaults, got cache_dir %q", cfg.CacheDir)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.CacheDir != tt.wantDir {
				t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, tt.wantDir)
			}
			if cfg.Analysis.ResearchDepth != tt.wantDepth {
				t.Errorf("ResearchDepth = %d, want %d", cfg.Analysis.ResearchDepth, tt.wantDepth)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.CacheDir != Default().CacheDir {
		t.Errorf("CacheDir = %q, want default", cfg.CacheDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "cache")
	t.Setenv(EnvCacheDir, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CacheDir != dir {
		t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, dir)
	}
}

func TestLoad_EnvRelativeRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvCacheDir, "relative/cache")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for relative TA_CACHE_DIR")
	}
}

func TestLoad_EnvOverrideWithInvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(t.TempDir(), "cache")
	t.Setenv(EnvCacheDir, dir)

	path := filepath.Join(home, ".config", "ta", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`theme = "bogus"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil || !strings.Contains(err.Error(), `invalid theme "bogus"`) {
		t.Errorf("Load() error = %v, want invalid theme", err)
	}
	if cfg.CacheDir != dir {
		t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, dir)
	}
}

func TestLoad_InvalidFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvCacheDir, "relative/cache")

	path := filepath.Join(home, ".config", "ta", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`cache_dir = `), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"failed to parse config file", EnvCacheDir} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %v, want containing %q", err, want)
		}
	}
}

func TestWithCacheDir(t *testing.T) {
	t.Parallel()

	cfg := Default()

	same, err := cfg.WithCacheDir("")
	if err != nil || same.CacheDir != cfg.CacheDir {
		t.Errorf("empty override changed cache dir to %q (err %v)", same.CacheDir, err)
	}

	rel, err := cfg.WithCacheDir("data_cache")
	if err != nil {
		t.Fatalf("WithCacheDir() error = %v", err)
	}
	if !filepath.IsAbs(rel.CacheDir) || filepath.Base(rel.CacheDir) != "data_cache" {
		t.Errorf("relative override resolved to %q", rel.CacheDir)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ta", "config.toml")

	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated config: %v", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("generated config is not valid TOML: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("generated config does not validate: %v", err)
	}

	if err := Init(path, false); err == nil {
		t.Error("second Init without force should fail")
	}
	if err := Init(path, true); err != nil {
		t.Errorf("Init with force should overwrite: %v", err)
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %s, want %s", tt.opts, got, tt.want)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); got.CacheDir != Default().CacheDir {
		t.Errorf("empty context should yield defaults, got %q", got.CacheDir)
	}

	cfg := &Config{CacheDir: "/srv/ta"}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Error("FromContext should return the stored config")
	}
}
