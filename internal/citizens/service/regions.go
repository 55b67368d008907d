package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/requestcontext"
)

// CreateRegion adds a region. Names are unique ignoring case.
func (s *Service) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	var region *models.Region
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := models.NewRegion(id.RegionID(uuid.New()), name, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.regions.Create(txCtx, r); err != nil {
			return wrapRegionErr(err, "failed to create region")
		}
		region = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("region")
	s.logRegionEvent(ctx, eventlog.TypeRegionCreated, region, fmt.Sprintf("region %s created", region.Name))
	return region, nil
}

func (s *Service) UpdateRegion(ctx context.Context, regionID id.RegionID, name string) (*models.Region, error) {
	if regionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "region ID required")
	}
	var region *models.Region
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.regions.FindByID(txCtx, regionID)
		if err != nil {
			return wrapRegionErr(err, "failed to load region")
		}
		if err := r.Rename(name, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.regions.Update(txCtx, r); err != nil {
			return wrapRegionErr(err, "failed to update region")
		}
		region = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logRegionEvent(ctx, eventlog.TypeRegionUpdated, region, fmt.Sprintf("region renamed to %s", region.Name))
	return region, nil
}

func (s *Service) GetRegion(ctx context.Context, regionID id.RegionID) (*models.Region, error) {
	if regionID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "region ID required")
	}
	r, err := s.regions.FindByID(ctx, regionID)
	if err != nil {
		return nil, wrapRegionErr(err, "failed to load region")
	}
	return r, nil
}

// ListRegions returns every region ordered by name.
func (s *Service) ListRegions(ctx context.Context) ([]*models.Region, error) {
	rs, err := s.regions.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list regions")
	}
	return rs, nil
}

func (s *Service) logRegionEvent(ctx context.Context, typ eventlog.Type, r *models.Region, description string) {
	s.logger.InfoContext(ctx, string(typ),
		"region_id", r.ID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        typ,
		Description: description,
		EntityType:  eventlog.EntityRegion,
		EntityID:    uuid.UUID(r.ID),
	})
}
