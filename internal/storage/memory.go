package storage

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and as a fallback
// when no SQLite path is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) Get(key string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	decodeInto(raw, out)
	return nil
}

func (s *MemoryStore) Set(key string, v any) error {
	raw, err := encodeValue(v)
	if err != nil {
		return err
	}
	return s.SetRaw(key, raw)
}

func (s *MemoryStore) GetRaw(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *MemoryStore) SetRaw(key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
