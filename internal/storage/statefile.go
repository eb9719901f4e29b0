package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/hwcheck/internal/model"
)

// StateStore persists the whole AppState as an indented JSON document,
// keeping one backup copy of the previous file content.
type StateStore struct {
	path       string
	backupPath string
}

func NewStateStore(path, backupPath string) *StateStore {
	if backupPath == "" {
		backupPath = path + ".bak"
	}
	return &StateStore{path: path, backupPath: backupPath}
}

// Save copies the current file to the backup path (best-effort), then
// writes the state through a tmp file and renames it into place.
func (s *StateStore) Save(state *model.AppState) error {
	if state == nil {
		return errors.New("storage: nil state")
	}
	if raw, err := os.ReadFile(s.path); err == nil {
		// Backup failures are swallowed: losing the backup must not block
		// the save itself.
		_ = os.WriteFile(s.backupPath, raw, 0o644)
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create state dir: %w", err)
		}
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("storage: write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: replace state file: %w", err)
	}
	return nil
}

// Load reads the primary file. A missing, unreadable, or malformed file is
// "no saved state" (ok=false) rather than an error: the caller starts
// fresh. Decoded states are normalized so missing fields get defaults.
func (s *StateStore) Load() (*model.AppState, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	state := model.NewAppState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, false
	}
	state.Normalize()
	return state, true
}

// Reset removes the primary and backup files. Missing files are fine.
func (s *StateStore) Reset() error {
	for _, path := range []string{s.path, s.backupPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("storage: remove %s: %w", path, err)
		}
	}
	return nil
}
