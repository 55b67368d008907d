// Package revocation records logged-out sessions until their tokens expire.
package revocation

import (
	"context"
	"sync"
	"time"

	id "welfare/pkg/domain"
)

// InMemory keeps revoked session IDs in process memory. Entries are dropped
// once the token they guard would have expired anyway.
type InMemory struct {
	mu      sync.Mutex
	revoked map[id.SessionID]time.Time
	now     func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		revoked: make(map[id.SessionID]time.Time),
		now:     time.Now,
	}
}

func (s *InMemory) Revoke(_ context.Context, sessionID id.SessionID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.purge(now)
	s.revoked[sessionID] = now.Add(ttl)
	return nil
}

func (s *InMemory) IsRevoked(_ context.Context, sessionID id.SessionID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	return s.now().Before(expiry), nil
}

// purge drops expired entries. Called with mu held.
func (s *InMemory) purge(now time.Time) {
	for sessionID, expiry := range s.revoked {
		if !now.Before(expiry) {
			delete(s.revoked, sessionID)
		}
	}
}
