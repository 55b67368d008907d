package service

import (
	"log/slog"

	"welfare/internal/platform/metrics"
)

type Option func(*Service)

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
