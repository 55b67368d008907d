package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"welfare/internal/eventlog"
	"welfare/internal/sentinel"
	"welfare/internal/users/models"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/requestcontext"
)

// Login checks the credentials of an active user and opens a session.
// Usernames match case-insensitively. A legacy password hash is replaced by
// a bcrypt hash on the first successful login.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Session, *models.User, error) {
	if s.tokens == nil {
		return nil, nil, dErrors.New(dErrors.CodeInternal, "sessions are not configured")
	}
	key := pstrings.FoldKey(username)
	if key == "" || password == "" {
		return nil, nil, s.loginFailed(ctx, username, "missing credentials")
	}

	ip := requestcontext.ClientIP(ctx)
	if s.guard != nil {
		if err := s.guard.Check(ctx, username, ip); err != nil {
			if dErrors.HasCode(err, dErrors.CodeTooManyRequests) {
				s.metrics.IncLogin("locked")
				s.loginRejected(ctx, username, "locked out")
			}
			return nil, nil, err
		}
	}

	var user *models.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.store.FindByUsernameKey(txCtx, key)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return errInvalidCredentials
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
		}
		if !u.IsActive() {
			return errInvalidCredentials
		}
		needsRehash, err := s.hasher.Verify(password, u.PasswordHash)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
				return errInvalidCredentials
			}
			return err
		}
		if needsRehash {
			hash, err := s.hasher.Hash(password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		u.RecordLogin(requestcontext.Now(txCtx))
		if err := s.store.Update(txCtx, u); err != nil {
			return wrapUserErr(err, "failed to record login")
		}
		user = u
		return nil
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			if s.guard != nil {
				if gerr := s.guard.RecordFailure(ctx, username, ip); gerr != nil {
					s.logger.ErrorContext(ctx, "failed to record login failure", "error", gerr)
				}
			}
			return nil, nil, s.loginFailed(ctx, username, "invalid credentials")
		}
		return nil, nil, err
	}
	if s.guard != nil {
		if err := s.guard.Clear(ctx, username, ip); err != nil {
			s.logger.WarnContext(ctx, "failed to clear login failures", "error", err)
		}
	}

	sessionID := id.SessionID(uuid.New())
	token, expiresAt, err := s.tokens.Issue(ctx, user.ID, sessionID, string(user.Role))
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncLogin("success")
	s.logger.InfoContext(ctx, string(eventlog.TypeLogin),
		"user_id", user.ID,
		"session_id", sessionID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events != nil {
		s.events.Log(ctx, eventlog.Event{
			Type:        eventlog.TypeLogin,
			Description: "user " + user.Username + " logged in",
			EntityType:  eventlog.EntityUser,
			EntityID:    uuid.UUID(user.ID),
			UserID:      user.ID,
		})
	}
	return &models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, user, nil
}

// Logout revokes the session of the current request.
func (s *Service) Logout(ctx context.Context) error {
	sessionID := requestcontext.SessionID(ctx)
	if sessionID.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	if s.revocations == nil || s.tokens == nil {
		return dErrors.New(dErrors.CodeInternal, "sessions are not configured")
	}
	if err := s.revocations.Revoke(ctx, sessionID, s.tokens.TTL()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to end session")
	}

	userID := requestcontext.UserID(ctx)
	s.logger.InfoContext(ctx, string(eventlog.TypeLogout),
		"user_id", userID,
		"session_id", sessionID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events != nil {
		s.events.Log(ctx, eventlog.Event{
			Type:        eventlog.TypeLogout,
			Description: "session ended",
			EntityType:  eventlog.EntityUser,
			EntityID:    uuid.UUID(userID),
		})
	}
	return nil
}

// EnsureAdmin creates an administrator when none is active, so a fresh
// installation can be logged into. It reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	n, err := s.store.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count administrators")
	}
	if n > 0 {
		return false, nil
	}
	_, err = s.Create(ctx, &UserCommand{
		Username:  username,
		Password:  password,
		LastName:  "Administrator",
		FirstName: "System",
		Role:      models.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// loginFailed records a rejected login without naming a user and returns
// the error shown to the caller.
func (s *Service) loginFailed(ctx context.Context, username, reason string) error {
	s.metrics.IncLogin("failure")
	s.loginRejected(ctx, username, reason)
	return errInvalidCredentials
}

func (s *Service) loginRejected(ctx context.Context, username, reason string) {
	s.logger.WarnContext(ctx, string(eventlog.TypeLoginFailed),
		"reason", reason,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events != nil {
		s.events.Log(ctx, eventlog.Event{
			Type:        eventlog.TypeLoginFailed,
			Description: "failed login attempt for username " + username + " (" + reason + ")",
		})
	}
}
