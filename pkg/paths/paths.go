// Package paths provides centralized path resolution for foliodesk's config
// and data files.
//
// Layout (XDG-style):
//
//	Config: ~/.config/foliodesk/config.yaml  (override: FOLIO_CONFIG_DIR)
//	State:  ~/.local/state/foliodesk/        (override: FOLIO_STATE_DIR)
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	configDirOnce   sync.Once
	configDirCached string

	stateDirOnce   sync.Once
	stateDirCached string
)

// ConfigDir resolves the config directory.
// Priority: FOLIO_CONFIG_DIR env > ~/.config/foliodesk/
func ConfigDir() string {
	configDirOnce.Do(func() {
		if env := os.Getenv("FOLIO_CONFIG_DIR"); env != "" {
			configDirCached = env
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				configDirCached = "."
			} else {
				configDirCached = filepath.Join(home, ".config", "foliodesk")
			}
		}
	})
	return configDirCached
}

// StateDir resolves the state directory.
// Priority: FOLIO_STATE_DIR env > ~/.local/state/foliodesk/
func StateDir() string {
	stateDirOnce.Do(func() {
		if env := os.Getenv("FOLIO_STATE_DIR"); env != "" {
			stateDirCached = env
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				stateDirCached = "."
			} else {
				stateDirCached = filepath.Join(home, ".local", "state", "foliodesk")
			}
		}
	})
	return stateDirCached
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StatePath returns the full path to a state file (e.g. "contributions.json").
func StatePath(filename string) string {
	return filepath.Join(StateDir(), filename)
}

// EnsureStateDir creates the state directory if it doesn't exist and returns
// its path.
func EnsureStateDir() (string, error) {
	dir := StateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return dir, nil
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
	stateDirOnce = sync.Once{}
	stateDirCached = ""
}
