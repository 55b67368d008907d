package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"welfare/internal/citizens/service"
	citizenstore "welfare/internal/citizens/store/citizen"
	regionstore "welfare/internal/citizens/store/region"
	"welfare/pkg/requestcontext"
)

// CitizenHandlerSuite exercises the HTTP surface against the real service
// backed by in-memory stores.
//
// Justification: the handler owns query precedence on GET /citizens and the
// mapping of format, validation and uniqueness failures onto distinct
// response codes.
type CitizenHandlerSuite struct {
	suite.Suite
	router *chi.Mux
	now    time.Time
}

func TestCitizenHandlerSuite(t *testing.T) {
	suite.Run(t, new(CitizenHandlerSuite))
}

func (s *CitizenHandlerSuite) SetupTest() {
	s.now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(citizenstore.NewInMemory(), regionstore.NewInMemory(), service.WithLogger(logger))
	h := New(svc, logger)

	s.router = chi.NewRouter()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), s.now)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	h.Register(s.router)
	h.RegisterWrites(s.router)
}

func (s *CitizenHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequestWithContext(context.Background(), method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *CitizenHandlerSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func citizenBody(identifier string) map[string]any {
	return map[string]any{
		"last_name":   "Ivanova",
		"first_name":  "Maria",
		"middle_name": "Petrovna",
		"birth_date":  "1980-03-14",
		"identifier":  identifier,
		"phone":       "89161234567",
	}
}

func (s *CitizenHandlerSuite) createRegion(name string) RegionResponse {
	rec := s.do(http.MethodPost, "/regions", map[string]any{"name": name})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var out RegionResponse
	s.decode(rec, &out)
	return out
}

func (s *CitizenHandlerSuite) TestCreateAndFetch() {
	rec := s.do(http.MethodPost, "/citizens", citizenBody("11223344595"))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created CitizenResponse
	s.decode(rec, &created)
	s.Equal("112-233-445 95", created.Identifier)
	s.Equal("+7 (916) 123-45-67", created.Phone)
	s.Equal("Ivanova Maria Petrovna", created.FullName)
	s.Equal("1980-03-14", created.BirthDate)
	s.Equal("active", created.Status)

	s.Run("by id", func() {
		rec := s.do(http.MethodGet, "/citizens/"+created.ID, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("by formatted identifier", func() {
		rec := s.do(http.MethodGet, "/citizens/by-identifier/112-233-445%2095", nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var got CitizenResponse
		s.decode(rec, &got)
		s.Equal(created.ID, got.ID)
	})

	s.Run("unknown id is 404", func() {
		rec := s.do(http.MethodGet, "/citizens/8b1f5c2e-6f0a-4b7e-9a51-0c6c1f1d2e3a", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id is 400", func() {
		rec := s.do(http.MethodGet, "/citizens/nope", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CitizenHandlerSuite) TestCreateErrorKinds() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/citizens", citizenBody("11223344595")).Code)

	cases := []struct {
		name       string
		identifier string
		status     int
		errCode    string
	}{
		{"wrong digit count", "1122334459", http.StatusBadRequest, "format_error"},
		{"bad checksum", "11223344596", http.StatusBadRequest, "validation_error"},
		{"already registered", "112 233 445 95", http.StatusConflict, "constraint_violation"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/citizens", citizenBody(tc.identifier))
			s.Equal(tc.status, rec.Code, rec.Body.String())
			var body map[string]string
			s.decode(rec, &body)
			s.Equal(tc.errCode, body["error"])
		})
	}

	s.Run("missing birth date fails request validation", func() {
		body := citizenBody("12345678964")
		delete(body, "birth_date")
		rec := s.do(http.MethodPost, "/citizens", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unparseable birth date", func() {
		body := citizenBody("12345678964")
		body["birth_date"] = "14.03.1980"
		rec := s.do(http.MethodPost, "/citizens", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown region", func() {
		body := citizenBody("12345678964")
		body["region_id"] = "8b1f5c2e-6f0a-4b7e-9a51-0c6c1f1d2e3a"
		rec := s.do(http.MethodPost, "/citizens", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CitizenHandlerSuite) TestListQueryPrecedence() {
	north := s.createRegion("North")

	first := citizenBody("11223344595")
	first["region_id"] = north.ID
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/citizens", first).Code)

	second := citizenBody("12345678964")
	second["last_name"] = "Petrov"
	second["first_name"] = "Oleg"
	rec := s.do(http.MethodPost, "/citizens", second)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var petrov CitizenResponse
	s.decode(rec, &petrov)
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/citizens/"+petrov.ID+"/deactivate", nil).Code)

	list := func(query string) []CitizenResponse {
		rec := s.do(http.MethodGet, "/citizens"+query, nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var out []CitizenResponse
		s.decode(rec, &out)
		return out
	}

	s.Run("active by default", func() {
		s.Len(list(""), 1)
	})
	s.Run("active=false includes deactivated", func() {
		s.Len(list("?active=false"), 2)
	})
	s.Run("region filter", func() {
		got := list("?region_id=" + north.ID)
		s.Require().Len(got, 1)
		s.Equal("Ivanova", got[0].LastName)
	})
	s.Run("name search wins over region and skips inactive", func() {
		s.Empty(list("?q=petr&region_id=" + north.ID))
		s.Len(list("?q=IVAN"), 1)
	})
	s.Run("bad region id", func() {
		rec := s.do(http.MethodGet, "/citizens?region_id=x", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CitizenHandlerSuite) TestDeactivateTwiceConflicts() {
	rec := s.do(http.MethodPost, "/citizens", citizenBody("11223344595"))
	s.Require().Equal(http.StatusCreated, rec.Code)
	var c CitizenResponse
	s.decode(rec, &c)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/citizens/"+c.ID+"/deactivate", nil).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/citizens/"+c.ID+"/deactivate", nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/citizens/"+c.ID+"/reactivate", nil).Code)
}

func (s *CitizenHandlerSuite) TestRegions() {
	north := s.createRegion("North")
	s.createRegion("South")

	s.Run("duplicate name ignores case", func() {
		rec := s.do(http.MethodPost, "/regions", map[string]any{"name": "  north "})
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("blank name", func() {
		rec := s.do(http.MethodPost, "/regions", map[string]any{"name": "   "})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rename", func() {
		rec := s.do(http.MethodPut, "/regions/"+north.ID, map[string]any{"name": "Far North"})
		s.Require().Equal(http.StatusOK, rec.Code)
		var got RegionResponse
		s.decode(rec, &got)
		s.Equal("Far North", got.Name)
	})

	s.Run("stats omit empty regions", func() {
		body := citizenBody("11223344595")
		body["region_id"] = north.ID
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/citizens", body).Code)

		rec := s.do(http.MethodGet, "/regions/stats", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		var stats []RegionCountResponse
		s.decode(rec, &stats)
		s.Equal([]RegionCountResponse{{Region: "Far North", Count: 1}}, stats)
	})
}
