package memory

import (
	"context"
	"sync"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/storage"
)

// Storage is an in-memory implementation of the store interface.
// It does not survive restarts; it exists for tests and local runs.
type Storage struct {
	mu     sync.RWMutex
	actors map[actor.Key]map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		actors: make(map[actor.Key]map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Put(ctx context.Context, key actor.Key, field string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.actors[key]
	if !ok {
		fields = make(map[string][]byte)
		s.actors[key] = fields
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	fields[field] = stored
	return nil
}

func (s *Storage) Get(ctx context.Context, key actor.Key, field string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.actors[key][field]
	if !ok {
		return nil, storage.ErrNotFound
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (s *Storage) Fields(ctx context.Context, key actor.Key) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]byte, len(s.actors[key]))
	for field, value := range s.actors[key] {
		stored := make([]byte, len(value))
		copy(stored, value)
		result[field] = stored
	}
	return result, nil
}

func (s *Storage) Delete(ctx context.Context, key actor.Key, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.actors[key], field)
	return nil
}

func (s *Storage) Clear(ctx context.Context, key actor.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.actors, key)
	return nil
}
