package params

import (
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/ta/internal/storage"
)

// LastRunFile is the state file holding the previous selections.
const LastRunFile = "last_run.json"

// LastRunPath returns ~/.ta/last_run.json.
func LastRunPath() (string, error) {
	return storage.Path(LastRunFile)
}

// LoadLast reads the selections saved by [SaveLast].
// A missing file yields zero Selections and no error.
func LoadLast(path string) (Selections, error) {
	var s Selections
	if err := storage.LoadJSON(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Selections{}, nil
		}
		return Selections{}, fmt.Errorf("load last run: %w", err)
	}
	return s, nil
}

// SaveLast stores s as defaults for the next run.
func SaveLast(path string, s Selections) error {
	if err := storage.SaveJSON(path, s); err != nil {
		return fmt.Errorf("save last run: %w", err)
	}
	return nil
}
