package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and store-less development
// runs. Documents are kept per collection in insertion order and identifiers
// are random UUIDs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	stored := make(Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored[IdentifierKey] = id

	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) FindAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.collections[collection]
	docs := make([]Document, 0, len(stored))
	for _, d := range stored {
		copied := make(Document, len(d))
		for k, v := range d {
			copied[k] = v
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func (s *MemoryStore) ListCollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
