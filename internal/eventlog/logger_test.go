package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	"welfare/pkg/requestcontext"
)

// LoggerSuite covers event enrichment and failure isolation.
//
// Justification: writes must never fail because the event log is down, and
// every entry must be attributed to the acting user and client from the
// request context rather than from ambient state.
type LoggerSuite struct {
	suite.Suite
	store   *InMemoryStore
	metrics *metrics.Metrics
	now     time.Time
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerSuite))
}

func (s *LoggerSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
}

func (s *LoggerSuite) requestCtx(userID id.UserID) context.Context {
	ctx := requestcontext.WithTime(context.Background(), s.now)
	ctx = requestcontext.WithClientMetadata(ctx, "10.1.2.3", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0")
	if !userID.IsNil() {
		ctx = requestcontext.WithUser(ctx, userID, "operator")
	}
	return ctx
}

func (s *LoggerSuite) all() []*Entry {
	entries, err := s.store.Filter(context.Background(), Filter{})
	s.Require().NoError(err)
	return entries
}

type failingStore struct{}

func (failingStore) Append(context.Context, *Entry) error { return errors.New("db down") }

type recordingSink struct {
	got []*Entry
	err error
}

func (r *recordingSink) Publish(_ context.Context, e *Entry) error {
	r.got = append(r.got, e)
	return r.err
}

func (s *LoggerSuite) TestLogEnrichesFromContext() {
	operator := id.UserID(uuid.New())
	citizenID := uuid.New()
	l := NewLogger(s.store, WithMetrics(s.metrics))

	l.Log(s.requestCtx(operator), Event{
		Type:        TypeCitizenCreated,
		Description: "citizen registered",
		EntityType:  EntityCitizen,
		EntityID:    citizenID,
	})

	entries := s.all()
	s.Require().Len(entries, 1)
	e := entries[0]
	s.Require().NotNil(e.UserID)
	s.Equal(operator, *e.UserID)
	s.Require().NotNil(e.EntityID)
	s.Equal(citizenID, *e.EntityID)
	s.Equal("10.1.2.3", e.IPAddress)
	s.Equal(s.now, e.CreatedAt)
	s.False(e.ID.IsNil())
	s.InDelta(1, testutil.ToFloat64(s.metrics.EventsLogged), 0.001)
}

func (s *LoggerSuite) TestEventUserOverridesContext() {
	loggedIn := id.UserID(uuid.New())
	l := NewLogger(s.store)

	l.Log(s.requestCtx(id.UserID{}), Event{Type: TypeLogin, UserID: loggedIn})
	l.Log(s.requestCtx(id.UserID{}), Event{Type: TypeLoginFailed})

	entries := s.all()
	s.Require().Len(entries, 2)
	var withUser, anonymous int
	for _, e := range entries {
		if e.UserID != nil {
			s.Equal(loggedIn, *e.UserID)
			withUser++
		} else {
			s.Equal(TypeLoginFailed, e.Type)
			s.Nil(e.EntityID)
			anonymous++
		}
	}
	s.Equal(1, withUser)
	s.Equal(1, anonymous)
}

func (s *LoggerSuite) TestStoreFailureIsSwallowed() {
	sink := &recordingSink{}
	l := NewLogger(failingStore{}, WithMetrics(s.metrics), WithSink(sink))

	s.NotPanics(func() {
		l.Log(s.requestCtx(id.UserID(uuid.New())), Event{Type: TypeUserUpdated})
	})
	s.Empty(sink.got, "entries that were not persisted are not fanned out")
	s.InDelta(1, testutil.ToFloat64(s.metrics.EventsDropped), 0.001)
}

func (s *LoggerSuite) TestSinkFailureDoesNotUndoPersist() {
	sink := &recordingSink{err: errors.New("broker unavailable")}
	l := NewLogger(s.store, WithSink(sink), WithSink(nil))

	l.Log(s.requestCtx(id.UserID(uuid.New())), Event{Type: TypeGrantCreated})

	s.Len(s.all(), 1)
	s.Len(sink.got, 1)
}

func (s *LoggerSuite) TestAsyncBufferDrainsOnClose() {
	l := NewLogger(s.store, WithAsyncBuffer(16))
	for range 5 {
		l.Log(s.requestCtx(id.UserID(uuid.New())), Event{Type: TypeReportGenerated})
	}
	l.Close()

	s.Len(s.all(), 5)
}

func (s *LoggerSuite) TestLogAfterCloseIsDropped() {
	l := NewLogger(s.store, WithAsyncBuffer(4), WithMetrics(s.metrics))
	l.Log(s.requestCtx(id.UserID(uuid.New())), Event{Type: TypeReportGenerated})
	l.Close()

	s.NotPanics(func() {
		l.Log(s.requestCtx(id.UserID(uuid.New())), Event{Type: TypeLogout})
		l.Close()
	})
	s.Len(s.all(), 1)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.EventsDropped))
}
