package testutil

import (
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/storage"
)

// MemStore is an in-memory service.Storage. It round-trips through the real
// JSON codec so value semantics match the file adapter: mutations made after
// Load are invisible until Save, and a failed Save changes nothing.
type MemStore struct {
	data  []byte
	Saves int
	// FailSave, when set, is returned by the next Save calls.
	FailSave error
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

// Seed replaces the persisted state wholesale, bypassing FailSave.
func (m *MemStore) Seed(s *domain.Store) {
	data, err := storage.Encode(s, false)
	if err != nil {
		panic("testutil: seeding unencodable store: " + err.Error())
	}
	m.data = data
}

func (m *MemStore) Load() *domain.Store {
	if m.data == nil {
		return domain.NewStore()
	}
	s, err := storage.Decode(m.data)
	if err != nil {
		return domain.NewStore()
	}
	s.Repair()
	return s
}

func (m *MemStore) Save(s *domain.Store) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	data, err := storage.Encode(s, false)
	if err != nil {
		return err
	}
	m.data = data
	m.Saves++
	return nil
}
