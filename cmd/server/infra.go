package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"welfare/internal/eventlog"
	"welfare/internal/platform/config"
	"welfare/internal/platform/database"
	"welfare/internal/platform/health"
	"welfare/internal/platform/kafka/producer"
	"welfare/internal/platform/metrics"
	redisclient "welfare/internal/platform/redis"
	"welfare/internal/ratelimit/authlockout"
	lockoutstore "welfare/internal/ratelimit/store"
	"welfare/internal/users/store/revocation"
	"welfare/migrations"
	id "welfare/pkg/domain"
	"welfare/pkg/platform/circuit"
)

const (
	eventBufferSize      = 1024
	statsInterval        = 15 * time.Second
	producerCloseTimeout = 10 * time.Second
)

type revocationList interface {
	Revoke(ctx context.Context, sessionID id.SessionID, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID id.SessionID) (bool, error)
}

// infra holds the external connections and how to release them.
type infra struct {
	stores      *stores
	pool        *database.Pool
	redis       *redisclient.Client
	producer    *producer.Producer
	revocations revocationList
	lockouts    authlockout.Store
	closers     []func()
}

func (i *infra) close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		i.closers[n]()
	}
}

// openInfra connects to whatever cfg configures and falls back to memory
// for the rest.
func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger, reg prometheus.Registerer, m *metrics.Metrics, checks *health.Handler) (*infra, error) {
	in := &infra{}

	pool, err := database.New(ctx, database.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if pool == nil {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		in.stores = memoryStores()
	} else {
		in.pool = pool
		in.closers = append(in.closers, func() { _ = pool.Close() })
		checks.RegisterPinger("database", pool)
		if cfg.Database.Migrate {
			applied, err := database.Migrate(ctx, pool.DB(), migrations.FS)
			if err != nil {
				in.close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			log.Info("database migrated", "applied", applied)
		}
		in.stores = postgresStores(pool.DB())
	}

	client, err := redisclient.New(ctx, cfg.Redis, redisclient.NewPoolMetrics(reg))
	if err != nil {
		in.close()
		return nil, err
	}
	if client == nil {
		log.Warn("REDIS_URL not set, session revocation and login lockout are kept in memory")
		in.revocations = revocation.NewInMemory()
		in.lockouts = lockoutstore.NewInMemory()
	} else {
		in.redis = client
		in.closers = append(in.closers, func() { _ = client.Close() })
		checks.RegisterPinger("redis", client)
		in.revocations = revocation.NewRedis(client.Client)
		lockouts := lockoutstore.NewResilient(lockoutstore.NewRedis(client.Client), lockoutstore.NewInMemory(), log,
			circuit.WithOnChange(m.SetCircuitOpen))
		checks.RegisterDegraded("login_lockout", lockouts.Degraded)
		in.lockouts = lockouts
	}

	if cfg.Kafka.Brokers != "" {
		p, err := producer.New(producer.Config{Brokers: cfg.Kafka.Brokers}, log)
		if err != nil {
			in.close()
			return nil, err
		}
		in.producer = p
		in.closers = append(in.closers, func() { _ = p.Close(producerCloseTimeout) })
		checks.RegisterPinger("kafka", p)
	}
	return in, nil
}

// eventLogger persists events asynchronously and, with Kafka configured,
// publishes them to the events topic.
func (i *infra) eventLogger(cfg config.Server, log *slog.Logger, m *metrics.Metrics) *eventlog.Logger {
	opts := []eventlog.LoggerOption{
		eventlog.WithLogger(log),
		eventlog.WithMetrics(m),
		eventlog.WithAsyncBuffer(eventBufferSize),
	}
	if i.producer != nil {
		opts = append(opts, eventlog.WithSink(eventlog.NewKafkaSink(i.producer, cfg.Kafka.EventsTopic)))
	}
	return eventlog.NewLogger(i.stores.events, opts...)
}

// loginGuard applies the configured lockout policy to the lockout store.
func (i *infra) loginGuard(cfg config.Server, log *slog.Logger) (*authlockout.Service, error) {
	return authlockout.New(i.lockouts,
		authlockout.WithLogger(log),
		authlockout.WithConfig(authlockout.Config{
			AttemptsPerWindow: cfg.LoginLockout.Attempts,
			Window:            cfg.LoginLockout.Window,
			LockDuration:      cfg.LoginLockout.Duration,
		}),
	)
}

// recordStats samples pool statistics until ctx ends.
func (i *infra) recordStats(ctx context.Context, m *metrics.Metrics) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if i.pool != nil {
				m.RecordDBStats(i.pool.Stats())
			}
			if i.redis != nil {
				i.redis.RecordPoolStats()
			}
		}
	}
}
