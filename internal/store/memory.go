package store

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront-core/internal/port"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns a process-local Store. It backs tests and sessions
// where durability is not wanted.
func NewMemory() port.Store {
	return &memoryStore{values: map[string][]byte{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dup := make([]byte, len(value))
	copy(dup, value)
	s.values[key] = dup
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
