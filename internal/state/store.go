// Package state persists the timer snapshot as a JSON file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pomotick/internal/engine"
)

// Store reads and writes engine snapshots at a fixed path. Saves are
// serialized by a mutex and written temp-then-rename so a reader never
// observes a partial snapshot.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for path, creating the parent directory if needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Load reads the persisted snapshot. A missing file is not an error and
// yields (nil, nil); a file that does not parse as a snapshot is a hard
// error. Unknown keys (stale ephemeral fields from older writers) are
// ignored by the decoder.
func (s *Store) Load() (*engine.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	if _, err := engine.ParseMode(string(snap.Mode)); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", s.path, err)
	}
	if snap.DailyWorkTotals == nil {
		snap.DailyWorkTotals = map[string]float64{}
	}
	return &snap, nil
}

// Save writes the snapshot atomically.
func (s *Store) Save(snap engine.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write state file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
