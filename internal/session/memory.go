package session

import (
	"context"
	"sync"
	"time"

	"kambaz-backend/internal/models"
)

type memoryEntry struct {
	user      models.User
	expiresAt time.Time
}

// MemoryStore is the Redis-less session store used by tests and local dev.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{user: *user, expiresAt: time.Now().Add(TTL)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, nil
	}
	user := entry.user
	return &user, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
