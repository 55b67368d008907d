package eventlog

import (
	"context"
	"sort"
	"sync"

	id "welfare/pkg/domain"
)

// Store persists and queries entries.
type Store interface {
	Appender
	// Filter returns matching entries ordered by CreatedAt descending.
	Filter(ctx context.Context, f Filter) ([]*Entry, error)
}

// InMemoryStore keeps entries in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	seen    map[id.EventID]struct{}
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{seen: make(map[id.EventID]struct{})}
}

// Append ignores an entry whose ID is already stored, so replays are safe.
func (s *InMemoryStore) Append(_ context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[entry.ID]; ok {
		return nil
	}
	s.seen[entry.ID] = struct{}{}
	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

func (s *InMemoryStore) Filter(_ context.Context, f Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, 0)
	for _, e := range s.entries {
		if f.Matches(e) {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
