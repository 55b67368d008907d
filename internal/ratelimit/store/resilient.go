package store

import (
	"context"
	"log/slog"
	"time"

	"welfare/internal/ratelimit/authlockout"
	"welfare/pkg/platform/circuit"
)

// Resilient wraps a shared primary store with a circuit breaker. Once the
// primary keeps failing, calls are answered by the in-process fallback so
// logins stay possible; the primary is still tried and takes over again after
// enough consecutive successes.
type Resilient struct {
	primary  authlockout.Store
	fallback authlockout.Store
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewResilient(primary, fallback authlockout.Store, logger *slog.Logger, opts ...circuit.Option) *Resilient {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resilient{
		primary:  primary,
		fallback: fallback,
		breaker:  circuit.New("login_lockout", opts...),
		logger:   logger,
	}
}

// Degraded reports whether the fallback is currently serving.
func (s *Resilient) Degraded() bool {
	return s.breaker.IsOpen()
}

func (s *Resilient) Get(ctx context.Context, key string, now time.Time) (*authlockout.Record, error) {
	return resilientCall(ctx, s, func(st authlockout.Store) (*authlockout.Record, error) {
		return st.Get(ctx, key, now)
	})
}

func (s *Resilient) RecordFailure(ctx context.Context, key string, now time.Time, window time.Duration) (*authlockout.Record, error) {
	return resilientCall(ctx, s, func(st authlockout.Store) (*authlockout.Record, error) {
		return st.RecordFailure(ctx, key, now, window)
	})
}

func (s *Resilient) Lock(ctx context.Context, key string, until time.Time) error {
	_, err := resilientCall(ctx, s, func(st authlockout.Store) (struct{}, error) {
		return struct{}{}, st.Lock(ctx, key, until)
	})
	return err
}

func (s *Resilient) Clear(ctx context.Context, key string) error {
	_, err := resilientCall(ctx, s, func(st authlockout.Store) (struct{}, error) {
		return struct{}{}, st.Clear(ctx, key)
	})
	return err
}

func resilientCall[T any](ctx context.Context, s *Resilient, call func(authlockout.Store) (T, error)) (T, error) {
	result, err := call(s.primary)
	if err != nil {
		useFallback, change := s.breaker.RecordFailure()
		if change.Opened {
			s.logger.ErrorContext(ctx, "circuit breaker opened",
				"circuit", s.breaker.Name(),
				"error", err,
			)
		}
		if useFallback {
			return call(s.fallback)
		}
		return result, err
	}

	usePrimary, change := s.breaker.RecordSuccess()
	if change.Closed {
		s.logger.InfoContext(ctx, "circuit breaker closed", "circuit", s.breaker.Name())
	}
	if !usePrimary {
		// Recovering: the fallback still holds the state written while open.
		return call(s.fallback)
	}
	return result, nil
}
