package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	"welfare/internal/users/models"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/tx"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,PasswordHasher,TokenIssuer,Revoker,LoginGuard

type Store interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByUsernameKey(ctx context.Context, key string) (*models.User, error)
	UsernameExists(ctx context.Context, key string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (needsRehash bool, err error)
}

type TokenIssuer interface {
	Issue(ctx context.Context, userID id.UserID, sessionID id.SessionID, role string) (string, time.Time, error)
	TTL() time.Duration
}

// Revoker records logged-out sessions.
type Revoker interface {
	Revoke(ctx context.Context, sessionID id.SessionID, ttl time.Duration) error
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LoginGuard throttles repeated failed logins per username and client address.
type LoginGuard interface {
	Check(ctx context.Context, username, ip string) error
	RecordFailure(ctx context.Context, username, ip string) error
	Clear(ctx context.Context, username, ip string) error
}

type EventLogger interface {
	Log(ctx context.Context, e eventlog.Event)
}

// Service manages user accounts and login sessions.
type Service struct {
	store       Store
	hasher      PasswordHasher
	tokens      TokenIssuer
	revocations Revoker
	guard       LoginGuard
	logger      *slog.Logger
	metrics     *metrics.Metrics
	events      EventLogger
	tx          StoreTx
}

func New(store Store, hasher PasswordHasher, opts ...Option) *Service {
	s := &Service{store: store, hasher: hasher}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tx == nil {
		s.tx = tx.NewMemory()
	}
	return s
}

func (s *Service) Create(ctx context.Context, cmd *UserCommand) (*models.User, error) {
	var user *models.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u := &models.User{Status: models.StatusActive}
		if err := s.prepareUser(txCtx, cmd, u); err != nil {
			return err
		}
		now := requestcontext.Now(txCtx)
		u.ID = id.UserID(uuid.New())
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := s.store.Create(txCtx, u); err != nil {
			return wrapUserErr(err, "failed to create user")
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("user")
	s.logEvent(ctx, eventlog.TypeUserCreated, user, fmt.Sprintf("user %s created with role %s", user.Username, user.Role))
	return user, nil
}

func (s *Service) Update(ctx context.Context, userID id.UserID, cmd *UserCommand) (*models.User, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	var user *models.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.store.FindByID(txCtx, userID)
		if err != nil {
			return wrapUserErr(err, "failed to load user")
		}
		if err := s.prepareUser(txCtx, cmd, u); err != nil {
			return err
		}
		u.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.store.Update(txCtx, u); err != nil {
			return wrapUserErr(err, "failed to update user")
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, eventlog.TypeUserUpdated, user, fmt.Sprintf("user %s updated", user.Username))
	return user, nil
}

func (s *Service) Get(ctx context.Context, userID id.UserID) (*models.User, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapUserErr(err, "failed to load user")
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*models.User, error) {
	us, err := s.store.List(ctx, activeOnly)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return us, nil
}

// ListByRole returns the active users holding role.
func (s *Service) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	if !role.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown role %q", role)
	}
	us, err := s.store.ListByRole(ctx, role)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return us, nil
}

// Deactivate blocks a user from logging in. Users cannot deactivate their
// own account.
func (s *Service) Deactivate(ctx context.Context, userID id.UserID) (*models.User, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if userID == requestcontext.UserID(ctx) {
		return nil, dErrors.New(dErrors.CodeValidation, "you cannot deactivate your own account")
	}
	return s.transition(ctx, userID, false)
}

func (s *Service) Reactivate(ctx context.Context, userID id.UserID) (*models.User, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.transition(ctx, userID, true)
}

func (s *Service) transition(ctx context.Context, userID id.UserID, activate bool) (*models.User, error) {
	var user *models.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.store.FindByID(txCtx, userID)
		if err != nil {
			return wrapUserErr(err, "failed to load user")
		}
		now := requestcontext.Now(txCtx)
		if activate {
			err = u.Reactivate(now)
		} else {
			err = u.Deactivate(now)
		}
		if err != nil {
			return invariantToConflict(err)
		}
		if err := s.store.Update(txCtx, u); err != nil {
			return wrapUserErr(err, "failed to update user")
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStatusChange("user", string(user.Status))
	typ, verb := eventlog.TypeUserDeactivated, "deactivated"
	if activate {
		typ, verb = eventlog.TypeUserReactivated, "reactivated"
	}
	s.logEvent(ctx, typ, user, fmt.Sprintf("user %s %s", user.Username, verb))
	return user, nil
}

func (s *Service) logEvent(ctx context.Context, typ eventlog.Type, u *models.User, description string) {
	s.logger.InfoContext(ctx, string(typ),
		"user_id", u.ID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        typ,
		Description: description,
		EntityType:  eventlog.EntityUser,
		EntityID:    uuid.UUID(u.ID),
	})
}

func requireUserID(userID id.UserID) error {
	if userID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}
	return nil
}
