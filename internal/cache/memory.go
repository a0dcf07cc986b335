package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry    Entry
	deadline time.Time
}

// MemoryStore guarda as entradas em um mapa no próprio processo.
// Criado uma vez na subida da aplicação e injetado nos loaders.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// agora é substituível em teste
	agora func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		agora:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool) {
	s.mu.RLock()
	me, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.agora().After(me.deadline) {
		// Expirada: remove de forma preguiçosa.
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	e := me.entry
	return &e, true
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		entry:    entry,
		deadline: s.agora().Add(ttl),
	}
}

func (s *MemoryStore) Clear(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
