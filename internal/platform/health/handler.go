// Package health serves the liveness, readiness and status probes.
package health

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"welfare/pkg/platform/httputil"
)

// Version is overridden with -ldflags at build time.
var Version = "dev"

// CheckFunc returns nil while the dependency is usable.
type CheckFunc func(ctx context.Context) error

// Pinger covers the database pool, the Redis client and the Kafka producer.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DegradedFunc reports that a component is serving from a fallback. A
// degraded component does not fail readiness.
type DegradedFunc func() bool

const checkTimeout = 2 * time.Second

const (
	statusUp       = "up"
	statusDegraded = "degraded"
)

type Handler struct {
	startTime   time.Time
	environment string
	now         func() time.Time

	mu       sync.RWMutex
	checks   map[string]CheckFunc
	degraded map[string]DegradedFunc
}

func New(environment string) *Handler {
	return &Handler{
		startTime:   time.Now(),
		environment: environment,
		now:         time.Now,
		checks:      map[string]CheckFunc{},
		degraded:    map[string]DegradedFunc{},
	}
}

func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

func (h *Handler) RegisterPinger(name string, p Pinger) {
	h.RegisterCheck(name, p.Ping)
}

func (h *Handler) RegisterDegraded(name string, fn DegradedFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.degraded[name] = fn
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

type LivenessResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness runs every check in parallel under a shared deadline.
// Any failure answers 503; a degraded component only changes the status text.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks, degraded := h.snapshot()

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]string, len(checks)+len(degraded))
		failed  bool
		g       errgroup.Group
	)
	for name, check := range checks {
		g.Go(func() error {
			result := statusUp
			if err := check(ctx); err != nil {
				result = "down: " + err.Error()
			}
			mu.Lock()
			defer mu.Unlock()
			results[name] = result
			if result != statusUp {
				failed = true
			}
			return nil
		})
	}
	_ = g.Wait()

	response := ReadinessResponse{Status: "ready", Checks: results}
	for name, isDegraded := range degraded {
		if isDegraded() {
			results[name] = statusDegraded
			response.Status = statusDegraded
		} else if _, ok := results[name]; !ok {
			results[name] = statusUp
		}
	}

	if failed {
		response.Status = "not_ready"
		httputil.WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) snapshot() (map[string]CheckFunc, map[string]DegradedFunc) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.checks), maps.Clone(h.degraded)
}

type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(now.Sub(h.startTime).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}
