package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	id "welfare/pkg/domain"
	"welfare/pkg/requestcontext"
)

// TokenValidator validates a bearer session token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// RevocationChecker reports whether a session token has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID id.SessionID) (bool, error)
}

// Claims are the identity fields carried by a session token.
type Claims struct {
	UserID    string
	SessionID string
	Role      string
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

type parsedClaims struct {
	UserID    id.UserID
	SessionID id.SessionID
	Role      string
}

func parseClaims(claims *Claims) (*parsedClaims, error) {
	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	sessionID, err := id.ParseSessionID(claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}
	if userID.IsNil() || sessionID.IsNil() {
		return nil, errors.New("nil identity in claims")
	}
	if claims.Role == "" {
		return nil, errors.New("missing role")
	}
	return &parsedClaims{UserID: userID, SessionID: sessionID, Role: claims.Role}, nil
}

// RequireAuth validates the bearer token, rejects logged-out sessions and
// stores the user ID, role and session ID in the request context.
func RequireAuth(validator TokenValidator, revocation RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token", "request_id", requestID)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token", "error", err, "request_id", requestID)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			parsed, err := parseClaims(claims)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed token claims", "error", err, "request_id", requestID)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			if revocation != nil {
				revoked, err := revocation.IsRevoked(ctx, parsed.SessionID)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check session revocation", "error", err, "request_id", requestID)
					writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to validate token")
					return
				}
				if revoked {
					logger.WarnContext(ctx, "unauthorized access - session ended",
						"session_id", parsed.SessionID.String(),
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Session has ended")
					return
				}
			}

			ctx = requestcontext.WithUser(ctx, parsed.UserID, parsed.Role)
			ctx = requestcontext.WithSessionID(ctx, parsed.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of roles. It must run after RequireAuth.
func RequireRole(logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			role := requestcontext.Role(ctx)
			if role == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			if !slices.Contains(roles, role) {
				logger.WarnContext(ctx, "forbidden - role not allowed",
					"role", role,
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
