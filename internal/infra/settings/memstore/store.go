package memstore

import (
	"context"
	"sync"

	"fpdemo/internal/infra/settings"
)

// Store is an in-memory backing store. Default for the general settings when
// no durable backend is configured, and the workhorse of the tests.
type Store struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func New() *Store {
	return &Store{entries: make(map[string][]byte)}
}

func (s *Store) WriteData(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.entries[key] = buf
	return nil
}

func (s *Store) ReadData(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.entries[key]
	if !ok {
		return nil, settings.ErrValueNotFound
	}
	return data, nil
}

func (s *Store) RemoveData(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *Store) ContainsData(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

var _ settings.BackingStore = (*Store)(nil)
