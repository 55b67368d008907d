// Package sync provides per-key locking for in-process stores.
package sync

import (
	"hash/fnv"
	"sync"
)

const defaultShards = 32

// KeyedMutex serializes work per key by hashing keys onto a fixed set of
// mutexes. Two keys may share a shard, so callers must never hold one key's
// lock while acquiring another.
type KeyedMutex struct {
	shards []sync.Mutex
}

// NewKeyedMutex uses 32 shards when n is not positive.
func NewKeyedMutex(n int) *KeyedMutex {
	if n <= 0 {
		n = defaultShards
	}
	return &KeyedMutex{shards: make([]sync.Mutex, n)}
}

func (m *KeyedMutex) Lock(key string) {
	m.shards[m.shard(key)].Lock()
}

func (m *KeyedMutex) Unlock(key string) {
	m.shards[m.shard(key)].Unlock()
}

// Do runs fn while holding key's lock.
func (m *KeyedMutex) Do(key string, fn func()) {
	mu := &m.shards[m.shard(key)]
	mu.Lock()
	defer mu.Unlock()
	fn()
}

func (m *KeyedMutex) shard(key string) int {
	if len(m.shards) == 1 || key == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(m.shards)))
}
