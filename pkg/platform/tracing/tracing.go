// Package tracing is a small span abstraction over OpenTelemetry so services
// can be traced without importing otel APIs directly. Use NewNoop in unit
// tests and NewOTel in the server.
package tracing

import (
	"context"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }

func Int(key string, value int) Attribute { return Attribute{Key: key, Value: int64(value)} }

func Int64(key string, value int64) Attribute { return Attribute{Key: key, Value: value} }

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanReportSummary      = "reports.summary"
	SpanReportBenefits     = "reports.benefits"
	SpanReportCertificates = "reports.certificates"
	SpanReportEventExport  = "reports.events_export"
	SpanReportCategories   = "reports.categories"
)

// Attribute keys.
const (
	AttrRowCount   = "report.rows"
	AttrFormat     = "report.format"
	AttrCategoryID = "filter.category_id"
	AttrRegionID   = "filter.region_id"
)
