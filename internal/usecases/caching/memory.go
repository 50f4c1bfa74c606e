package caching

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore é o backend em memória usado quando o Redis não está
// configurado. A expiração acontece na leitura; o varredor periódico
// (internal/scheduler) remove entradas expiradas que ninguém releu,
// limitando o crescimento do mapa sob alta cardinalidade de chaves.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.RLock()
	stored, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	if s.now().After(stored.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, nil
	}

	entry := stored.entry
	return &entry, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		entry:     *entry,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// Sweep remove as entradas expiradas e retorna quantas foram removidas
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for key, stored := range s.entries {
		if now.After(stored.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

// Len retorna a quantidade de entradas guardadas, expiradas ou não
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
