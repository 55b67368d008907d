package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{dErrors.New(dErrors.CodeFormat, "identifier must contain 11 digits"), http.StatusBadRequest, "format_error"},
		{dErrors.New(dErrors.CodeValidation, "last name is required"), http.StatusBadRequest, "validation_error"},
		{dErrors.New(dErrors.CodeConstraintViolation, "identifier taken"), http.StatusConflict, "constraint_violation"},
		{dErrors.New(dErrors.CodeNotFound, "citizen not found"), http.StatusNotFound, "not_found"},
		{dErrors.New(dErrors.CodeForbidden, "no"), http.StatusForbidden, "forbidden"},
		{dErrors.New(dErrors.CodeTooManyRequests, "try later"), http.StatusTooManyRequests, "too_many_requests"},
		{fmt.Errorf("wrapped: %w", dErrors.New(dErrors.CodeConflict, "inactive")), http.StatusConflict, "conflict"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeBody(t, w)["error"])
		})
	}

	t.Run("internal errors do not leak their text", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("pq: connection refused"))
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestPathID(t *testing.T) {
	r := chi.NewRouter()
	var got id.CitizenID
	r.Get("/citizens/{id}", func(w http.ResponseWriter, r *http.Request) {
		citizenID, ok := PathID(w, r, "id", id.ParseCitizenID)
		if !ok {
			return
		}
		got = citizenID
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/citizens/550e8400-e29b-41d4-a716-446655440001", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440001", got.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/citizens/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?from=2024-01-31&bad=31.01.2024&active=false&limit=5000", nil)

	from, err := QueryDate(req, "from")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", from.Format(DateLayout))

	missing, err := QueryDate(req, "to")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryDate(req, "bad")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	active, err := QueryBool(req, "active", true)
	require.NoError(t, err)
	assert.False(t, active)

	limit, err := QueryInt(req, "limit", 100, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, limit)
}
