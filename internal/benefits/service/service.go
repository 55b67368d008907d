package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"welfare/internal/benefits/models"
	citizenmodels "welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	"welfare/pkg/platform/tx"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CategoryStore,GrantStore,CitizenReader,EventLogger

type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
}

type GrantStore interface {
	Create(ctx context.Context, g *models.Grant) error
	Update(ctx context.Context, g *models.Grant) error
	FindByID(ctx context.Context, grantID id.GrantID) (*models.Grant, error)
	ListByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error)
	ListCurrentByCitizen(ctx context.Context, citizenID id.CitizenID, today time.Time) ([]*models.Grant, error)
	ListCurrent(ctx context.Context, today time.Time, categoryID *id.CategoryID) ([]*models.Grant, error)
	HasCurrentInCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID, today time.Time) (bool, error)
	LockCitizenCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID) error
	ListExpiring(ctx context.Context, from, to time.Time) ([]*models.Grant, error)
	CountActiveByCategory(ctx context.Context) (map[id.CategoryID]int, error)
	CountCitizensInCategory(ctx context.Context, categoryID id.CategoryID) (int, error)
	CountBeneficiaries(ctx context.Context) (int, error)
}

// CitizenReader resolves the citizen a grant is issued to.
type CitizenReader interface {
	FindByID(ctx context.Context, citizenID id.CitizenID) (*citizenmodels.Citizen, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventLogger interface {
	Log(ctx context.Context, e eventlog.Event)
}

// Service manages benefit categories and the grants that assign them to
// citizens.
type Service struct {
	categories CategoryStore
	grants     GrantStore
	citizens   CitizenReader
	logger     *slog.Logger
	metrics    *metrics.Metrics
	events     EventLogger
	tx         StoreTx
}

func New(categories CategoryStore, grants GrantStore, citizens CitizenReader, opts ...Option) *Service {
	s := &Service{categories: categories, grants: grants, citizens: citizens}
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

// today is the request date at midnight UTC.
func today(ctx context.Context) time.Time {
	return models.Day(requestcontext.Now(ctx))
}

func (s *Service) logEvent(ctx context.Context, typ eventlog.Type, entity eventlog.EntityType, entityID uuid.UUID, description string) {
	s.logger.InfoContext(ctx, string(typ),
		"entity_type", entity,
		"entity_id", entityID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        typ,
		Description: description,
		EntityType:  entity,
		EntityID:    entityID,
	})
}
