package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	benefithandler "welfare/internal/benefits/handler"
	certhandler "welfare/internal/certificates/handler"
	citizenhandler "welfare/internal/citizens/handler"
	"welfare/internal/eventlog"
	"welfare/internal/platform/health"
	reporthandler "welfare/internal/reports/handler"
	userhandler "welfare/internal/users/handler"
	usermodels "welfare/internal/users/models"
	"welfare/pkg/platform/middleware/auth"
	"welfare/pkg/platform/middleware/metadata"
	"welfare/pkg/platform/middleware/request"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultMaxBodyBytes   = 1 << 20
)

// Routes are the domain handlers mounted by NewRouter.
type Routes struct {
	Health       *health.Handler
	Users        *userhandler.Handler
	Citizens     *citizenhandler.Handler
	Benefits     *benefithandler.Handler
	Certificates *certhandler.Handler
	Reports      *reporthandler.Handler
	Events       *eventlog.Handler
}

// Config carries the cross-cutting dependencies of the middleware stack.
type Config struct {
	Logger         *slog.Logger
	Tokens         auth.TokenValidator
	Revocations    auth.RevocationChecker
	Metadata       *metadata.Middleware
	HTTPMetrics    *request.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter wires every endpoint behind the shared middleware stack.
//
// Access levels:
//   - public: health probes, /metrics and POST /auth/login
//   - any signed-in user: reads and reports
//   - operators and administrators: registry writes
//   - administrators: user management and the event log
func NewRouter(cfg Config, routes Routes) http.Handler {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Metadata == nil {
		cfg.Metadata = metadata.NewMiddleware(nil)
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.Clock)
	r.Use(cfg.Metadata.Handler)
	r.Use(request.Logger(cfg.Logger))
	if cfg.HTTPMetrics != nil {
		r.Use(request.Latency(cfg.HTTPMetrics))
	}
	r.Use(request.Timeout(cfg.RequestTimeout))
	r.Use(request.BodyLimit(cfg.MaxBodyBytes))
	r.Use(request.ContentTypeJSON)

	if routes.Health != nil {
		routes.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	routes.Users.RegisterPublic(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(cfg.Tokens, cfg.Revocations, cfg.Logger))

		routes.Users.RegisterSession(r)
		routes.Citizens.Register(r)
		routes.Benefits.Register(r)
		routes.Certificates.Register(r)
		routes.Reports.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(cfg.Logger, string(usermodels.RoleAdmin), string(usermodels.RoleOperator)))
			routes.Citizens.RegisterWrites(r)
			routes.Benefits.RegisterWrites(r)
			routes.Certificates.RegisterWrites(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(cfg.Logger, string(usermodels.RoleAdmin)))
			routes.Users.RegisterAdmin(r)
			routes.Events.Register(r)
			routes.Reports.RegisterAdmin(r)
		})
	})

	return r
}
