//go:build integration

// Package containers starts Postgres, Redis and Redpanda once per test binary
// and hands the same instances to every suite that asks.
package containers

import (
	"sync"
	"testing"
)

type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	redis    *RedisContainer
	kafka    *KafkaContainer
}

var manager = &Manager{}

func GetManager() *Manager {
	return manager
}

// GetPostgres returns a migrated database. Suites must clean their own rows.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	return shared(t, m, &m.postgres, NewPostgresContainer)
}

func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	t.Helper()
	return shared(t, m, &m.redis, NewRedisContainer)
}

func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	t.Helper()
	return shared(t, m, &m.kafka, NewKafkaContainer)
}

// shared starts the container in slot on first use. A start that fails the
// test leaves the slot empty so the next suite tries again.
func shared[C any](t *testing.T, m *Manager, slot **C, start func(*testing.T) *C) *C {
	t.Helper()
	if testing.Short() {
		t.Skip("container-backed test skipped in -short mode")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if *slot == nil {
		*slot = start(t)
	}
	return *slot
}
