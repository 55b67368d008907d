package sync

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// KeyedMutexSuite covers per-key serialization.
//
// Justification: the in-memory lockout store counts failures under these
// locks, so concurrent updates to one key must not be lost.
type KeyedMutexSuite struct {
	suite.Suite
}

func TestKeyedMutexSuite(t *testing.T) {
	suite.Run(t, new(KeyedMutexSuite))
}

func (s *KeyedMutexSuite) TestSameKeySerializes() {
	m := NewKeyedMutex(0)
	counter := 0
	var wg sync.WaitGroup
	for range 200 {
		wg.Go(func() {
			m.Do("login:anna:10.0.0.1", func() {
				counter++
			})
		})
	}
	wg.Wait()
	s.Equal(200, counter)
}

func (s *KeyedMutexSuite) TestLockUnlockAcrossKeys() {
	m := NewKeyedMutex(4)
	var wg sync.WaitGroup
	for i := range 100 {
		key := fmt.Sprintf("key-%d", i)
		wg.Go(func() {
			m.Lock(key)
			defer m.Unlock(key)
		})
	}
	wg.Wait()
}

func (s *KeyedMutexSuite) TestShardSelection() {
	s.Run("default shard count", func() {
		s.Len(NewKeyedMutex(-1).shards, 32)
	})

	s.Run("stable and in range", func() {
		m := NewKeyedMutex(8)
		for i := range 50 {
			key := fmt.Sprintf("citizen-%d", i)
			idx := m.shard(key)
			s.Equal(idx, m.shard(key))
			s.GreaterOrEqual(idx, 0)
			s.Less(idx, 8)
		}
	})

	s.Run("keys spread over shards", func() {
		m := NewKeyedMutex(32)
		seen := map[int]struct{}{}
		for i := range 20 {
			seen[m.shard(fmt.Sprintf("login:user%d:127.0.0.1", i))] = struct{}{}
		}
		s.GreaterOrEqual(len(seen), 5)
	})

	s.Run("empty key uses the first shard", func() {
		s.Equal(0, NewKeyedMutex(8).shard(""))
	})
}
