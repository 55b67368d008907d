package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/tx"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/requestcontext"
	"welfare/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CitizenStore,RegionStore,EventLogger

type CitizenStore interface {
	Create(ctx context.Context, c *models.Citizen) error
	Update(ctx context.Context, c *models.Citizen) error
	FindByID(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error)
	FindByIDs(ctx context.Context, ids []id.CitizenID) ([]*models.Citizen, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.Citizen, error)
	IdentifierExists(ctx context.Context, identifier string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Citizen, error)
	SearchByName(ctx context.Context, text string) ([]*models.Citizen, error)
	ListByRegion(ctx context.Context, regionID id.RegionID) ([]*models.Citizen, error)
	CountActiveByRegion(ctx context.Context) (map[id.RegionID]int, error)
	Count(ctx context.Context) (int, error)
}

type RegionStore interface {
	Create(ctx context.Context, r *models.Region) error
	Update(ctx context.Context, r *models.Region) error
	FindByID(ctx context.Context, regionID id.RegionID) (*models.Region, error)
	List(ctx context.Context) ([]*models.Region, error)
}

// StoreTx provides a transactional boundary for citizen and region mutations.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventLogger records user-visible events once a write has committed.
type EventLogger interface {
	Log(ctx context.Context, e eventlog.Event)
}

// Service manages the citizen registry and the regions citizens live in.
type Service struct {
	citizens CitizenStore
	regions  RegionStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
	events   EventLogger
	tx       StoreTx
}

func New(citizens CitizenStore, regions RegionStore, opts ...Option) *Service {
	s := &Service{citizens: citizens, regions: regions}
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

// Create registers a citizen. The identifier must be checksum-valid and not
// held by any other citizen.
func (s *Service) Create(ctx context.Context, cmd *CitizenCommand) (*models.Citizen, error) {
	var citizen *models.Citizen
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := s.prepareCitizen(txCtx, cmd, id.CitizenID{})
		if err != nil {
			return err
		}
		now := requestcontext.Now(txCtx)
		c := &models.Citizen{
			ID:        id.CitizenID(uuid.New()),
			Status:    models.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		f.applyTo(c)
		if err := s.citizens.Create(txCtx, c); err != nil {
			return wrapCitizenErr(err, "failed to create citizen")
		}
		citizen = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("citizen")
	s.logEvent(ctx, eventlog.TypeCitizenCreated, citizen.ID,
		fmt.Sprintf("citizen %s registered", citizen.FullName()))
	return citizen, nil
}

// Update replaces the editable fields of a citizen. Status is not touched;
// use Deactivate and Reactivate.
func (s *Service) Update(ctx context.Context, citizenID id.CitizenID, cmd *CitizenCommand) (*models.Citizen, error) {
	if err := requireCitizenID(citizenID); err != nil {
		return nil, err
	}
	var citizen *models.Citizen
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.citizens.FindByID(txCtx, citizenID)
		if err != nil {
			return wrapCitizenErr(err, "failed to load citizen")
		}
		f, err := s.prepareCitizen(txCtx, cmd, citizenID)
		if err != nil {
			return err
		}
		f.applyTo(c)
		c.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.citizens.Update(txCtx, c); err != nil {
			return wrapCitizenErr(err, "failed to update citizen")
		}
		citizen = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, eventlog.TypeCitizenUpdated, citizen.ID,
		fmt.Sprintf("citizen %s updated", citizen.FullName()))
	return citizen, nil
}

func (s *Service) Get(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error) {
	if err := requireCitizenID(citizenID); err != nil {
		return nil, err
	}
	c, err := s.citizens.FindByID(ctx, citizenID)
	if err != nil {
		return nil, wrapCitizenErr(err, "failed to load citizen")
	}
	return c, nil
}

// GetByIdentifier accepts the identifier in any punctuation.
func (s *Service) GetByIdentifier(ctx context.Context, identifier string) (*models.Citizen, error) {
	canonical, err := validation.CanonicalIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	c, err := s.citizens.FindByIdentifier(ctx, canonical)
	if err != nil {
		return nil, wrapCitizenErr(err, "failed to load citizen")
	}
	return c, nil
}

// FindByIDs loads several citizens at once for views that join on citizen.
func (s *Service) FindByIDs(ctx context.Context, ids []id.CitizenID) ([]*models.Citizen, error) {
	if err := limits.CheckSliceCount("citizen ids", len(ids), limits.MaxBatchIDs); err != nil {
		return nil, err
	}
	cs, err := s.citizens.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load citizens")
	}
	return cs, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*models.Citizen, error) {
	cs, err := s.citizens.List(ctx, activeOnly)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list citizens")
	}
	return cs, nil
}

// SearchByName matches active citizens on any name part, ignoring case.
// A blank query lists all active citizens.
func (s *Service) SearchByName(ctx context.Context, text string) ([]*models.Citizen, error) {
	text = strings.TrimSpace(text)
	if err := limits.CheckStringLength("search text", text, limits.MaxSearchLength); err != nil {
		return nil, err
	}
	cs, err := s.citizens.SearchByName(ctx, text)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search citizens")
	}
	return cs, nil
}

func (s *Service) ListByRegion(ctx context.Context, regionID id.RegionID) ([]*models.Citizen, error) {
	if regionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "region ID required")
	}
	cs, err := s.citizens.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list citizens by region")
	}
	return cs, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.citizens.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count citizens")
	}
	return n, nil
}

// Deactivate soft-deletes a citizen. Grants and certificates stay as they are.
func (s *Service) Deactivate(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error) {
	return s.transition(ctx, citizenID, false)
}

func (s *Service) Reactivate(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error) {
	return s.transition(ctx, citizenID, true)
}

func (s *Service) transition(ctx context.Context, citizenID id.CitizenID, activate bool) (*models.Citizen, error) {
	if err := requireCitizenID(citizenID); err != nil {
		return nil, err
	}
	var citizen *models.Citizen
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.citizens.FindByID(txCtx, citizenID)
		if err != nil {
			return wrapCitizenErr(err, "failed to load citizen")
		}
		change := c.Deactivate
		if activate {
			change = c.Reactivate
		}
		if err := change(requestcontext.Now(txCtx)); err != nil {
			if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
				return dErrors.New(dErrors.CodeConflict, err.Error())
			}
			return err
		}
		if err := s.citizens.Update(txCtx, c); err != nil {
			return wrapCitizenErr(err, "failed to update citizen")
		}
		citizen = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStatusChange("citizen", string(citizen.Status))
	if activate {
		s.logEvent(ctx, eventlog.TypeCitizenReactivated, citizen.ID,
			fmt.Sprintf("citizen %s reactivated", citizen.FullName()))
	} else {
		s.logEvent(ctx, eventlog.TypeCitizenDeactivated, citizen.ID,
			fmt.Sprintf("citizen %s deactivated", citizen.FullName()))
	}
	return citizen, nil
}

// CitizenCountByRegion reports active citizens per region name, ordered by
// name. Regions without active citizens are omitted.
func (s *Service) CitizenCountByRegion(ctx context.Context) ([]models.RegionCount, error) {
	counts, err := s.citizens.CountActiveByRegion(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count citizens by region")
	}
	regions, err := s.regions.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list regions")
	}
	out := make([]models.RegionCount, 0, len(counts))
	for _, r := range regions {
		if n := counts[r.ID]; n > 0 {
			out = append(out, models.RegionCount{RegionName: r.Name, Count: n})
		}
	}
	return out, nil
}

func (s *Service) logEvent(ctx context.Context, typ eventlog.Type, citizenID id.CitizenID, description string) {
	s.logger.InfoContext(ctx, string(typ),
		"citizen_id", citizenID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        typ,
		Description: description,
		EntityType:  eventlog.EntityCitizen,
		EntityID:    uuid.UUID(citizenID),
	})
}

func requireCitizenID(citizenID id.CitizenID) error {
	if citizenID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "citizen ID required")
	}
	return nil
}
