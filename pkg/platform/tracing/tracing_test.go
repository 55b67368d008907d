package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracerReturnsSameContext(t *testing.T) {
	ctx := context.Background()
	got, span := NewNoop().Start(ctx, SpanReportSummary, String("k", "v"))
	assert.Equal(t, ctx, got)
	require.NotNil(t, span)
	span.SetAttributes(Int(AttrRowCount, 3))
	span.AddEvent("rows.loaded")
	span.End(errors.New("ignored"))
}

func TestOTelTracerWithInjectedTracer(t *testing.T) {
	tr := NewOTel(noop.NewTracerProvider().Tracer("test"))
	_, span := tr.Start(context.Background(), SpanReportBenefits, String(AttrFormat, "csv"))
	require.NotNil(t, span)
	assert.NotPanics(t, func() {
		span.SetAttributes(Int(AttrRowCount, 10))
		span.End(errors.New("write failed"))
	})
}

func TestToOTelConversion(t *testing.T) {
	got := toOTel([]Attribute{
		String("s", "x"),
		Bool("b", true),
		Int("i", 7),
		Duration("d", 1500*time.Millisecond),
		{Key: "f", Value: 2.5},
		{Key: "skipped", Value: struct{}{}},
	})

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("s", "x"),
		attribute.Bool("b", true),
		attribute.Int64("i", 7),
		attribute.Int64("d", 1500),
		attribute.Float64("f", 2.5),
	}, got)
	assert.Nil(t, toOTel(nil))
}
