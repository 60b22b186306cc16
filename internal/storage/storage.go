// Package storage persists small JSON state files under ~/.ta/.
//
// The data cache is not stored here; it lives under the configured
// cache_dir and is owned by the analysis pipeline.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvStateDir overrides the state directory, mainly for tests and CI.
const EnvStateDir = "TA_STATE_DIR"

// StateDir returns the path to ~/.ta/ (or $TA_STATE_DIR), creating it if needed.
func StateDir() (string, error) {
	dir := os.Getenv(EnvStateDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".ta")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path returns the location of the named state file inside [StateDir].
func Path(name string) (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// SaveJSON atomically writes data as indented JSON to path.
// The parent directory is created, the document goes to a temp file in
// the same directory and is then renamed over path.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(append(jsonData, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// LoadJSON reads JSON from path into dest.
// A missing file returns an error matching os.ErrNotExist.
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
