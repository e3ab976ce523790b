// Package storage persists the full tracker state as a single JSON document
// on disk. Loading never fails: missing, unreadable, or malformed data
// degrades to a default store with one empty profile, and structurally odd
// documents (legacy array profiles, dangling active-profile references) are
// normalized on the way in.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanmort/slate/internal/domain"
)

// Adapter reads and writes the store document at a fixed path.
type Adapter struct {
	path string
}

func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// Path returns the file the adapter is bound to.
func (a *Adapter) Path() string {
	return a.path
}

// Load reads the store from disk. It never fails; any problem with the file
// or its contents yields a fresh default store instead.
func (a *Adapter) Load() *domain.Store {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return domain.NewStore()
	}
	s, err := Decode(data)
	if err != nil {
		return domain.NewStore()
	}
	s.Repair()
	return s
}

// Save writes the full store document, replacing prior content. The parent
// directory is created on first save.
func (a *Adapter) Save(s *domain.Store) error {
	data, err := Encode(s, false)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store directory: %w", err)
		}
	}
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}
