package session

import (
	"context"
	"sync"
	"time"

	"blog-gateway/internal/domain/entity"
)

type memoryEntry struct {
	principal entity.Principal
	expires   time.Time
}

// MemoryStore is a process-local Store used in tests and single-node setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry), ttl: ttl}
}

func (s *MemoryStore) Establish(_ context.Context, p *entity.Principal) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{principal: *p, expires: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (*entity.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[token]
	if !ok || time.Now().After(e.expires) {
		return nil, ErrNoSession
	}
	p := e.principal
	return &p, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
