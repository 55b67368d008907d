package jwttoken

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/requestcontext"
)

var (
	userID    = id.UserID(uuid.New())
	sessionID = id.SessionID(uuid.New())
	issuedAt  = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
)

func newService(now time.Time) *JWTService {
	return NewJWTService("test-signing-key", "welfare-test", 8*time.Hour,
		WithClock(func() time.Time { return now }))
}

func issue(t *testing.T, s *JWTService) (string, time.Time) {
	t.Helper()
	ctx := requestcontext.WithTime(context.Background(), issuedAt)
	token, expiresAt, err := s.Issue(ctx, userID, sessionID, "operator")
	require.NoError(t, err)
	return token, expiresAt
}

func TestIssueAndValidate(t *testing.T) {
	s := newService(issuedAt.Add(time.Hour))
	token, expiresAt := issue(t, s)
	assert.Equal(t, issuedAt.Add(8*time.Hour), expiresAt)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, sessionID.String(), claims.SessionID)
	assert.Equal(t, "operator", claims.Role)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token, _ := issue(t, newService(issuedAt))

	_, err := newService(issuedAt.Add(9 * time.Hour)).Parse(token)
	require.ErrorContains(t, err, "token expired")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	s := newService(issuedAt.Add(time.Minute))

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		require.ErrorContains(t, err, "invalid token")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := s.ValidateToken("")
		require.ErrorContains(t, err, "empty token")
	})

	t.Run("other signing key", func(t *testing.T) {
		other := NewJWTService("another-key", "welfare-test", time.Hour)
		other.now = s.now
		token, _ := issue(t, other)
		_, err := s.ValidateToken(token)
		require.ErrorContains(t, err, "invalid token")
	})

	t.Run("other issuer", func(t *testing.T) {
		other := NewJWTService("test-signing-key", "someone-else", time.Hour)
		token, _ := issue(t, other)
		_, err := s.ValidateToken(token)
		require.ErrorContains(t, err, "invalid token")
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
			UserID: userID.String(),
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "welfare-test",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
				ID:        sessionID.String(),
			},
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		require.ErrorContains(t, err, "invalid token")
	})
}
