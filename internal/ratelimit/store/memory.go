// Package store holds the login lockout stores: an in-process map, Redis for
// multi-instance deployments, and a resilient pairing of the two.
package store

import (
	"context"
	"sync"
	"time"

	"welfare/internal/ratelimit/authlockout"
	psync "welfare/pkg/platform/sync"
)

type memoryEntry struct {
	record    authlockout.Record
	expiresAt time.Time
}

// InMemory keeps records in process. Updates to one key are serialized by
// its shard lock; different keys proceed in parallel.
type InMemory struct {
	locks   *psync.KeyedMutex
	records sync.Map // key -> *memoryEntry
}

func NewInMemory() *InMemory {
	return &InMemory{locks: psync.NewKeyedMutex(0)}
}

func (s *InMemory) Get(_ context.Context, key string, now time.Time) (*authlockout.Record, error) {
	s.locks.Lock(key)
	defer s.locks.Unlock(key)
	return s.live(key, now), nil
}

func (s *InMemory) RecordFailure(_ context.Context, key string, now time.Time, window time.Duration) (*authlockout.Record, error) {
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	record := s.live(key, now)
	if record == nil {
		entry := &memoryEntry{
			record:    authlockout.Record{Key: key, Failures: 1, FirstFailure: now},
			expiresAt: now.Add(window),
		}
		s.records.Store(key, entry)
		return copyRecord(&entry.record), nil
	}

	v, _ := s.records.Load(key)
	entry := v.(*memoryEntry)
	entry.record.Failures++
	return copyRecord(&entry.record), nil
}

// Lock keeps the record alive at least until the lock ends.
func (s *InMemory) Lock(_ context.Context, key string, until time.Time) error {
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	v, ok := s.records.Load(key)
	if !ok {
		v = &memoryEntry{record: authlockout.Record{Key: key}}
		s.records.Store(key, v)
	}
	entry := v.(*memoryEntry)
	entry.record.LockedUntil = &until
	if until.After(entry.expiresAt) {
		entry.expiresAt = until
	}
	return nil
}

func (s *InMemory) Clear(_ context.Context, key string) error {
	s.locks.Do(key, func() { s.records.Delete(key) })
	return nil
}

// live returns a copy of the unexpired record for key. Expired entries are
// dropped. The caller holds the key's shard lock.
func (s *InMemory) live(key string, now time.Time) *authlockout.Record {
	v, ok := s.records.Load(key)
	if !ok {
		return nil
	}
	entry := v.(*memoryEntry)
	if !now.Before(entry.expiresAt) {
		s.records.Delete(key)
		return nil
	}
	return copyRecord(&entry.record)
}

func copyRecord(r *authlockout.Record) *authlockout.Record {
	c := *r
	if r.LockedUntil != nil {
		until := *r.LockedUntil
		c.LockedUntil = &until
	}
	return &c
}
