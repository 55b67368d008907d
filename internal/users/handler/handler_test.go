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
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	jwttoken "welfare/internal/jwt_token"
	"welfare/internal/users/handler/mocks"
	"welfare/internal/users/models"
	"welfare/internal/users/service"
	"welfare/internal/users/store/revocation"
	userstore "welfare/internal/users/store/user"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/middleware/auth"
	"welfare/pkg/secrets"
)

// UserHandlerSuite drives login, the session routes and admin-only account
// management through the auth middleware.
//
// Justification: a logged-out token must stop working at the middleware and
// operators must not reach account management.
type UserHandlerSuite struct {
	suite.Suite
	router *chi.Mux
	svc    *service.Service
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwttoken.NewJWTService("test-key", "welfare-test", time.Hour)
	revocations := revocation.NewInMemory()
	s.svc = service.New(userstore.NewInMemory(), secrets.NewHasher(bcrypt.MinCost),
		service.WithLogger(logger),
		service.WithSessions(tokens, revocations),
	)
	h := New(s.svc, logger)

	s.router = chi.NewRouter()
	h.RegisterPublic(s.router)
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens, revocations, logger))
		h.RegisterSession(r)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(logger, string(models.RoleAdmin)))
			h.RegisterAdmin(r)
		})
	})

	for _, u := range []struct {
		username string
		role     models.Role
	}{{"admin", models.RoleAdmin}, {"clerk", models.RoleOperator}} {
		_, err := s.svc.Create(context.Background(), &service.UserCommand{
			Username:  u.username,
			Password:  "s3cret",
			LastName:  "Sokolov",
			FirstName: "Pavel",
			Role:      u.role,
		})
		s.Require().NoError(err)
	}
}

func (s *UserHandlerSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequestWithContext(context.Background(), method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *UserHandlerSuite) login(username, password string) string {
	rec := s.do(http.MethodPost, "/auth/login", "", map[string]string{"username": username, "password": password})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var out LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Equal("Bearer", out.TokenType)
	return out.AccessToken
}

func (s *UserHandlerSuite) TestLoginMeLogout() {
	token := s.login("CLERK", "s3cret")

	rec := s.do(http.MethodGet, "/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var me UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))
	s.Equal("clerk", me.Username)
	s.NotNil(me.LastLoginAt)
	s.NotContains(rec.Body.String(), "password")

	rec = s.do(http.MethodPost, "/auth/logout", token, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/auth/me", token, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *UserHandlerSuite) TestLoginFailures() {
	rec := s.do(http.MethodPost, "/auth/login", "", map[string]string{"username": "clerk", "password": "wrong"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/auth/login", "", map[string]string{"username": "clerk"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *UserHandlerSuite) TestAccountManagementIsAdminOnly() {
	rec := s.do(http.MethodGet, "/users", s.login("clerk", "s3cret"), nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/users", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	admin := s.login("admin", "s3cret")
	rec = s.do(http.MethodGet, "/users", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var users []UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &users))
	s.Len(users, 2)

	rec = s.do(http.MethodPost, "/users", admin, map[string]string{
		"username":   "viewer",
		"password":   "pa55",
		"last_name":  "Orlova",
		"first_name": "Nina",
		"phone":      "+7 916 123-45-67",
		"role":       "citizen",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal("+7 (916) 123-45-67", created.Phone)

	rec = s.do(http.MethodGet, "/users/by-role/citizen", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &users))
	s.Len(users, 1)
}

func (s *UserHandlerSuite) TestAdminCannotDeactivateSelf() {
	admin := s.login("admin", "s3cret")
	rec := s.do(http.MethodGet, "/auth/me", admin, nil)
	var me UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &me))

	rec = s.do(http.MethodPost, "/users/"+me.ID+"/deactivate", admin, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "your own account")

	rec = s.do(http.MethodPost, "/users/not-a-uuid/deactivate", admin, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *UserHandlerSuite) TestLoginPassesCredentialsVerbatim() {
	ctrl := gomock.NewController(s.T())
	svc := mocks.NewMockService(ctrl)
	router := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterPublic(router)

	svc.EXPECT().Login(gomock.Any(), "clerk", " pass word ").
		Return(nil, nil, dErrors.New(dErrors.CodeInternal, "store unavailable"))

	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(map[string]string{"username": " clerk ", "password": " pass word "}))
	req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/auth/login", &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	s.Equal(http.StatusInternalServerError, rec.Code)
}
