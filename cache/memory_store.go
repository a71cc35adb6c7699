// ABOUTME: In-memory cache store for tests and single-process deployments
package cache

import (
	"context"
	"sync"
	"time"

	"credibility-checker/domain"
)

// MemoryStore is a mutex-guarded map with the same TTL semantics as the
// durable backends.
type MemoryStore struct {
	entries map[string]entry
	ttl     time.Duration
	mu      sync.RWMutex
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(ctx context.Context, url string) (*domain.Article, bool) {
	s.mu.RLock()
	e, ok := s.entries[Key(url)]
	s.mu.RUnlock()

	if !ok || e.expired(s.ttl, time.Now().UTC()) {
		return nil, false
	}

	article := e.Article
	return &article, true
}

func (s *MemoryStore) Put(ctx context.Context, url string, article *domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[Key(url)] = entry{
		Article:   *article,
		Timestamp: time.Now().UTC(),
	}

	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.entries)
	s.entries = make(map[string]entry)

	return removed, nil
}
