package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerSuite covers the probe endpoints.
//
// Justification: orchestrators route traffic off the readiness status code,
// so "any failing dependency yields 503" must hold regardless of check order.
type HealthHandlerSuite struct {
	suite.Suite
	handler *Handler
	router  chi.Router
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerSuite))
}

func (s *HealthHandlerSuite) SetupTest() {
	s.handler = New("test")
	s.router = chi.NewRouter()
	s.handler.Register(s.router)
}

func (s *HealthHandlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func (s *HealthHandlerSuite) TestLiveness() {
	rec := s.get("/health/live")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"alive"}`, rec.Body.String())
}

func (s *HealthHandlerSuite) TestReadiness() {
	s.Run("no checks is ready", func() {
		rec := s.get("/health/ready")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("all dependencies up", func() {
		s.handler.RegisterPinger("postgres", stubPinger{})
		s.handler.RegisterCheck("redis", func(context.Context) error { return nil })

		rec := s.get("/health/ready")
		s.Equal(http.StatusOK, rec.Code)

		var body ReadinessResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("ready", body.Status)
		s.Equal("up", body.Checks["postgres"])
		s.Equal("up", body.Checks["redis"])
	})

	s.Run("one dependency down", func() {
		s.handler.RegisterPinger("kafka", stubPinger{err: errors.New("no brokers")})

		rec := s.get("/health/ready")
		s.Equal(http.StatusServiceUnavailable, rec.Code)

		var body ReadinessResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("not_ready", body.Status)
		s.Equal("down: no brokers", body.Checks["kafka"])
		s.Equal("up", body.Checks["postgres"])
	})

	s.Run("checks receive a deadline", func() {
		h := New("test")
		h.RegisterCheck("slow", func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			if !ok {
				return errors.New("missing deadline")
			}
			return nil
		})
		rec := httptest.NewRecorder()
		h.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *HealthHandlerSuite) TestReadinessDegraded() {
	degraded := true
	s.handler.RegisterPinger("redis", stubPinger{})
	s.handler.RegisterDegraded("login_lockout", func() bool { return degraded })

	s.Run("fallback in use keeps the instance ready", func() {
		rec := s.get("/health/ready")
		s.Equal(http.StatusOK, rec.Code)

		var body ReadinessResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("degraded", body.Status)
		s.Equal("degraded", body.Checks["login_lockout"])
		s.Equal("up", body.Checks["redis"])
	})

	s.Run("recovered component reports up", func() {
		degraded = false
		var body ReadinessResponse
		s.Require().NoError(json.Unmarshal(s.get("/health/ready").Body.Bytes(), &body))
		s.Equal("ready", body.Status)
		s.Equal("up", body.Checks["login_lockout"])
	})

	s.Run("a failing check still wins", func() {
		degraded = true
		s.handler.RegisterPinger("postgres", stubPinger{err: errors.New("refused")})
		rec := s.get("/health/ready")
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func (s *HealthHandlerSuite) TestStatus() {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.handler.startTime = fixed.Add(-90 * time.Second)
	s.handler.now = func() time.Time { return fixed }

	rec := s.get("/health")
	s.Equal(http.StatusOK, rec.Code)

	var body StatusResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body.Status)
	s.Equal("test", body.Environment)
	s.Equal(int64(90), body.UptimeSeconds)
	s.Equal("2025-03-01T12:00:00Z", body.Timestamp)
}
