package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	exists    bool
	expiresAt time.Time
}

// InMemoryStore is a process-local Store with TTL expiration.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string]entry), now: time.Now}
}

func (s *InMemoryStore) Get(_ context.Context, key string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return false, false, nil
	}
	return e.exists, true, nil
}

func (s *InMemoryStore) Set(_ context.Context, key string, exists bool, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{exists: exists, expiresAt: s.now().Add(ttl)}
	return nil
}
