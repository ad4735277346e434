package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. It backs single-instance
// development runs and tests; sessions are lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

// NewMemoryStore builds an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep here so abandoned sessions don't pile up in a long-lived
	// process; lookups only evict their own token.
	for stale, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, stale)
		}
	}

	s.entries[token] = memoryEntry{
		userID:    userID,
		expiresAt: now.Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) UserID(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
