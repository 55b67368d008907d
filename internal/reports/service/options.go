package service

import (
	"log/slog"

	"welfare/internal/platform/metrics"
	"welfare/pkg/platform/tracing"
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

func WithEventLogger(l EventLogger) Option {
	return func(s *Service) {
		s.events = l
	}
}

// WithTracer wraps every report in a span. The default tracer is a no-op.
func WithTracer(t tracing.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}
