package store

import (
	"sync"
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// MemStore is a thread-safe, in-memory Store for tests. It mirrors the
// FileStore contract: first Load seeds, Load migrates, documents are deep
// copied in and out so callers never share state with the store.
type MemStore struct {
	mu  sync.Mutex
	doc *record.Document
	now func() time.Time
}

// NewMemStore returns an empty MemStore that seeds on first Load.
func NewMemStore() *MemStore {
	return &MemStore{now: time.Now}
}

// Load returns a copy of the current document, seeding if none was saved.
func (s *MemStore) Load() (*record.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		s.doc = Seed(s.now())
	}
	doc := s.doc.Clone()
	Migrate(doc)
	return doc, nil
}

// Save replaces the stored document with a copy of doc.
func (s *MemStore) Save(doc *record.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}

// Reset discards the stored document.
func (s *MemStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	return nil
}
