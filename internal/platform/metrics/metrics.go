package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus collectors. A nil *Metrics
// is valid and records nothing, so services can take it as an optional dependency.
type Metrics struct {
	RecordsCreated     *prometheus.CounterVec
	StatusChanges      *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	Logins             *prometheus.CounterVec
	ReportsGenerated   *prometheus.CounterVec
	EventsLogged       prometheus.Counter
	EventsDropped      prometheus.Counter
	CircuitOpen        *prometheus.GaugeVec

	DBOpenConns prometheus.Gauge
	DBInUse     prometheus.Gauge
	DBWaitCount prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "welfare_records_created_total",
			Help: "Records created, by entity",
		}, []string{"entity"}),
		StatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "welfare_status_changes_total",
			Help: "Soft status transitions, by entity and new status",
		}, []string{"entity", "status"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "welfare_validation_failures_total",
			Help: "Rejected writes, by failure kind",
		}, []string{"kind"}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "welfare_logins_total",
			Help: "Login attempts, by outcome",
		}, []string{"outcome"}),
		ReportsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "welfare_reports_generated_total",
			Help: "Reports generated, by report name",
		}, []string{"report"}),
		EventsLogged: f.NewCounter(prometheus.CounterOpts{
			Name: "welfare_events_logged_total",
			Help: "Event log entries persisted",
		}),
		EventsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "welfare_events_dropped_total",
			Help: "Event log entries that could not be persisted",
		}),
		CircuitOpen: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "welfare_circuit_open",
			Help: "1 while the named circuit breaker serves from its fallback",
		}, []string{"circuit"}),
		DBOpenConns: f.NewGauge(prometheus.GaugeOpts{
			Name: "welfare_db_open_connections",
			Help: "Open database connections",
		}),
		DBInUse: f.NewGauge(prometheus.GaugeOpts{
			Name: "welfare_db_in_use_connections",
			Help: "Database connections currently in use",
		}),
		DBWaitCount: f.NewGauge(prometheus.GaugeOpts{
			Name: "welfare_db_wait_count",
			Help: "Total number of connections waited for",
		}),
	}
}

func (m *Metrics) IncRecordCreated(entity string) {
	if m == nil {
		return
	}
	m.RecordsCreated.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncStatusChange(entity, status string) {
	if m == nil {
		return
	}
	m.StatusChanges.WithLabelValues(entity, status).Inc()
}

func (m *Metrics) IncValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncLogin(outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncReport(report string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(report).Inc()
}

func (m *Metrics) IncEventLogged() {
	if m == nil {
		return
	}
	m.EventsLogged.Inc()
}

func (m *Metrics) IncEventDropped() {
	if m == nil {
		return
	}
	m.EventsDropped.Inc()
}

// SetCircuitOpen matches the signature of circuit.WithOnChange.
func (m *Metrics) SetCircuitOpen(name string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.CircuitOpen.WithLabelValues(name).Set(v)
}

// RecordDBStats copies connection pool statistics into the DB gauges.
func (m *Metrics) RecordDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBOpenConns.Set(float64(stats.OpenConnections))
	m.DBInUse.Set(float64(stats.InUse))
	m.DBWaitCount.Set(float64(stats.WaitCount))
}
