package service

import (
	"log/slog"

	"welfare/internal/platform/metrics"
)

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithEventLogger(l EventLogger) Option {
	return func(s *Service) {
		s.events = l
	}
}

// WithSessions enables Login and Logout.
func WithSessions(tokens TokenIssuer, revocations Revoker) Option {
	return func(s *Service) {
		s.tokens = tokens
		s.revocations = revocations
	}
}

// WithLoginGuard enables lockout after repeated failed logins.
func WithLoginGuard(g LoginGuard) Option {
	return func(s *Service) {
		s.guard = g
	}
}
