// Package authlockout throttles password guessing. Failed logins are counted
// per username and client address; reaching the limit inside the window
// blocks further attempts for the lock duration, whatever the password.
package authlockout

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	dErrors "welfare/pkg/domain-errors"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

const keyPrefix = "login"

// Store keeps failure records. Records whose window has passed and that
// carry no active lock are treated as absent.
type Store interface {
	Get(ctx context.Context, key string, now time.Time) (*Record, error)
	RecordFailure(ctx context.Context, key string, now time.Time, window time.Duration) (*Record, error)
	Lock(ctx context.Context, key string, until time.Time) error
	Clear(ctx context.Context, key string) error
}

type Service struct {
	store  Store
	logger *slog.Logger
	config Config
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("auth lockout store is required")
	}
	svc := &Service{
		store:  store,
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Key folds the username so that case and spacing variants share a counter.
func Key(username, ip string) string {
	return keyPrefix + ":" + pstrings.FoldKey(username) + ":" + ip
}

// Check fails with CodeTooManyRequests while the key is locked.
func (s *Service) Check(ctx context.Context, username, ip string) error {
	now := requestcontext.Now(ctx)
	record, err := s.store.Get(ctx, Key(username, ip), now)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read login lockout")
	}
	if !record.LockedAt(now) {
		return nil
	}
	retryAfter := int(math.Ceil(record.LockedUntil.Sub(now).Minutes()))
	return dErrors.New(dErrors.CodeTooManyRequests,
		fmt.Sprintf("too many failed login attempts, try again in %d min", retryAfter))
}

// RecordFailure counts a failed attempt and locks the key once the limit is
// reached.
func (s *Service) RecordFailure(ctx context.Context, username, ip string) error {
	now := requestcontext.Now(ctx)
	key := Key(username, ip)
	record, err := s.store.RecordFailure(ctx, key, now, s.config.Window)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record login failure")
	}
	if record.Failures < s.config.AttemptsPerWindow || record.LockedAt(now) {
		return nil
	}

	until := now.Add(s.config.LockDuration)
	if err := s.store.Lock(ctx, key, until); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to lock login")
	}
	s.logger.WarnContext(ctx, "auth_lockout_triggered",
		"ip", ip,
		"failures", record.Failures,
		"locked_until", until,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	return nil
}

// Clear forgets the failure history after a successful login.
func (s *Service) Clear(ctx context.Context, username, ip string) error {
	if err := s.store.Clear(ctx, Key(username, ip)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear login failures")
	}
	return nil
}
