package repository

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store in process memory. Documents go through the
// same BSON conversion as MongoStore so readers see identical shapes.
type MemoryStore struct {
	name        string
	collections map[string][]Document
	mu          sync.RWMutex
	now         func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]Document),
		now:         time.Now,
	}
}

// CreateDocument stores v under a new UUID and returns it
func (s *MemoryStore) CreateDocument(ctx context.Context, collection string, v any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := NewDocument(v, s.now())
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	doc["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)

	return id, nil
}

// GetDocuments returns shallow copies of every document in collection, in insertion order
func (s *MemoryStore) GetDocuments(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.collections[collection]
	docs := make([]Document, 0, len(stored))
	for _, d := range stored {
		docs = append(docs, maps.Clone(d))
	}
	return docs, nil
}

// ListCollectionNames returns the names of non-empty collections, sorted
func (s *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.collections)), nil
}

// Name returns the database name the store was created with
func (s *MemoryStore) Name() string {
	return s.name
}

// Close is a no-op
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
