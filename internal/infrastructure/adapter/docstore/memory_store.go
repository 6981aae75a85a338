package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// MemoryStore implements the DocumentStore interface in process memory.
// Used by tests and as a standalone mode without a database; semantics
// match the PostgreSQL store, including the atomic batch and the silent
// no-op merge on missing keys.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[persistence.Collection]map[string][]byte

	// FailNextBatch makes the next ApplyBatch call fail without applying
	// anything. Lets tests exercise the no-partial-commit guarantee.
	FailNextBatch bool
}

// NewMemoryStore creates a new in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[persistence.Collection]map[string][]byte),
	}
}

// GetAll returns every document in the collection, ordered by key for
// deterministic iteration
func (s *MemoryStore) GetAll(_ context.Context, collection persistence.Collection) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll := s.collections[collection]
	keys := make([]string, 0, len(coll))
	for k := range coll {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	docs := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		docs = append(docs, append(json.RawMessage(nil), coll[k]...))
	}
	return docs, nil
}

// GetByKey returns the document stored under key
func (s *MemoryStore) GetByKey(_ context.Context, collection persistence.Collection, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][key]
	if !ok {
		return nil, errs.ErrDocumentNotFound
	}
	return append(json.RawMessage(nil), data...), nil
}

// PutByKey stores doc under key, replacing any existing document
func (s *MemoryStore) PutByKey(_ context.Context, collection persistence.Collection, key string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(collection, key, doc)
}

// UpdateFields merges the given fields into the document under key.
// A missing key is a silent no-op.
func (s *MemoryStore) UpdateFields(_ context.Context, collection persistence.Collection, key string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.merge(collection, key, fields)
}

// ApplyBatch applies all writes atomically: validation runs against a copy
// first, so a failing write leaves the store untouched.
func (s *MemoryStore) ApplyBatch(_ context.Context, writes []persistence.Write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNextBatch {
		s.FailNextBatch = false
		return errs.NewPersistenceError("batch", "", "", fmt.Errorf("injected batch failure"))
	}

	snapshot := s.snapshot()
	for _, w := range writes {
		var err error
		if w.Doc != nil {
			err = s.put(w.Collection, w.Key, w.Doc)
		} else {
			err = s.merge(w.Collection, w.Key, w.Fields)
		}
		if err != nil {
			s.collections = snapshot
			return errs.NewPersistenceError("batch", string(w.Collection), w.Key, err)
		}
	}
	return nil
}

func (s *MemoryStore) snapshot() map[persistence.Collection]map[string][]byte {
	cp := make(map[persistence.Collection]map[string][]byte, len(s.collections))
	for c, coll := range s.collections {
		cc := make(map[string][]byte, len(coll))
		for k, v := range coll {
			cc[k] = v
		}
		cp[c] = cc
	}
	return cp
}

func (s *MemoryStore) put(collection persistence.Collection, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string][]byte)
		s.collections[collection] = coll
	}
	coll[key] = data
	return nil
}

func (s *MemoryStore) merge(collection persistence.Collection, key string, fields map[string]any) error {
	data, ok := s.collections[collection][key]
	if !ok {
		return nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshaling document for merge: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling merged document: %w", err)
	}
	s.collections[collection][key] = merged
	return nil
}
