package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "welfare/pkg/domain"
)

// HandlerSuite exercises query parsing and JSON rendering.
//
// Justification: the "to" date is inclusive of the whole day and limits are
// clamped, which is easy to regress when touching the query helpers.
type HandlerSuite struct {
	suite.Suite
	store  *InMemoryStore
	router http.Handler
	day    time.Time
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	r := chi.NewRouter()
	NewHandler(NewService(s.store), logger).Register(r)
	s.router = r
}

func (s *HandlerSuite) seed(at time.Time, typ Type, userID *id.UserID) {
	s.Require().NoError(s.store.Append(context.Background(), &Entry{
		ID:        id.EventID(uuid.New()),
		UserID:    userID,
		Type:      typ,
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		CreatedAt: at,
	}))
}

func (s *HandlerSuite) get(target string) (*httptest.ResponseRecorder, []EntryResponse) {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body []EntryResponse
	if rec.Code == http.StatusOK {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *HandlerSuite) TestFilterToDateCoversWholeDay() {
	s.seed(s.day.Add(23*time.Hour+59*time.Minute), TypeLogin, nil)
	s.seed(s.day.AddDate(0, 0, 1), TypeLogin, nil)

	rec, body := s.get("/events?from=2025-03-10&to=2025-03-10")
	s.Equal(http.StatusOK, rec.Code)
	s.Len(body, 1)
	s.NotEmpty(body[0].Device)
}

func (s *HandlerSuite) TestFilterByUserAndType() {
	userID := id.UserID(uuid.New())
	s.seed(s.day, TypeLogin, &userID)
	s.seed(s.day.Add(time.Hour), TypeLogout, &userID)
	s.seed(s.day.Add(2*time.Hour), TypeLogin, nil)

	rec, body := s.get("/events?user_id=" + userID.String() + "&type=login")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(body, 1)
	s.Equal(userID.String(), body[0].UserID)
}

func (s *HandlerSuite) TestBadQueryParameters() {
	for _, target := range []string{
		"/events?from=10.03.2025",
		"/events?user_id=not-a-uuid",
		"/events?limit=-1",
		"/events/latest?limit=abc",
	} {
		s.Run(target, func() {
			rec, _ := s.get(target)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *HandlerSuite) TestInvertedRangeIsRejected() {
	rec, _ := s.get("/events?from=2025-03-11&to=2025-03-10")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestLatestIsNewestFirst() {
	for i := range 3 {
		s.seed(s.day.Add(time.Duration(i)*time.Hour), TypeReportGenerated, nil)
	}

	rec, body := s.get("/events/latest?limit=2")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(body, 2)
	s.True(body[0].CreatedAt.After(body[1].CreatedAt))
}
