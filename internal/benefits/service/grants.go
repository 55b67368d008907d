package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"welfare/internal/benefits/models"
	"welfare/internal/eventlog"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/requestcontext"
	"welfare/pkg/validation"
)

// GrantBenefit assigns a category to a citizen. Both must exist and be
// active, the period must not end before it starts, and the citizen must not
// already hold a current grant in the category.
func (s *Service) GrantBenefit(ctx context.Context, cmd *GrantCommand) (*models.Grant, error) {
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "grant is required")
	}
	if cmd.CitizenID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "citizen ID required")
	}
	if err := requireCategoryID(cmd.CategoryID); err != nil {
		return nil, err
	}
	number, description, err := s.prepareGrantText(cmd.Number, cmd.Description)
	if err != nil {
		return nil, err
	}
	start, end := models.Day(cmd.StartDate), models.DayPtr(cmd.EndDate)
	if err := s.checkPeriod(start, end); err != nil {
		return nil, err
	}

	var grant *models.Grant
	var categoryName string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		citizen, err := s.citizens.FindByID(txCtx, cmd.CitizenID)
		if err != nil {
			return wrapCitizenErr(err, "failed to load citizen")
		}
		if !citizen.IsActive() {
			return s.reject(dErrors.New(dErrors.CodeValidation, "benefits cannot be granted to an inactive citizen"))
		}
		category, err := s.activeCategory(txCtx, cmd.CategoryID)
		if err != nil {
			return err
		}
		if err := s.claimCategory(txCtx, cmd.CitizenID, cmd.CategoryID, "failed to grant benefit"); err != nil {
			return err
		}

		now := requestcontext.Now(txCtx)
		g := &models.Grant{
			ID:          id.GrantID(uuid.New()),
			CitizenID:   cmd.CitizenID,
			CategoryID:  cmd.CategoryID,
			StartDate:   start,
			EndDate:     end,
			Number:      number,
			Description: description,
			Status:      models.StatusActive,
			CreatedBy:   requestcontext.UserID(txCtx),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.grants.Create(txCtx, g); err != nil {
			return wrapGrantErr(err, "failed to grant benefit")
		}
		grant = g
		categoryName = category.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("benefit_grant")
	s.logGrantEvent(ctx, eventlog.TypeGrantCreated, grant,
		fmt.Sprintf("benefit %s granted to citizen %s", categoryName, grant.CitizenID))
	return grant, nil
}

// UpdateGrant edits a grant. The period rule applies. The duplicate rule
// applies only when a grant that stays current moves to another category,
// so a grant edited in place can always be corrected.
func (s *Service) UpdateGrant(ctx context.Context, grantID id.GrantID, cmd *UpdateGrantCommand) (*models.Grant, error) {
	if err := requireGrantID(grantID); err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "grant is required")
	}
	if err := requireCategoryID(cmd.CategoryID); err != nil {
		return nil, err
	}
	number, description, err := s.prepareGrantText(cmd.Number, cmd.Description)
	if err != nil {
		return nil, err
	}
	start, end := models.Day(cmd.StartDate), models.DayPtr(cmd.EndDate)
	if err := s.checkPeriod(start, end); err != nil {
		return nil, err
	}

	var grant *models.Grant
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.grants.FindByID(txCtx, grantID)
		if err != nil {
			return wrapGrantErr(err, "failed to load benefit")
		}
		if g.CategoryID != cmd.CategoryID {
			if _, err := s.activeCategory(txCtx, cmd.CategoryID); err != nil {
				return err
			}
			moved := models.Grant{Status: g.Status, EndDate: end}
			if moved.IsCurrent(today(txCtx)) {
				if err := s.claimCategory(txCtx, g.CitizenID, cmd.CategoryID, "failed to update benefit"); err != nil {
					return err
				}
			}
		}
		g.CategoryID = cmd.CategoryID
		g.StartDate = start
		g.EndDate = end
		g.Number = number
		g.Description = description
		g.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.grants.Update(txCtx, g); err != nil {
			return wrapGrantErr(err, "failed to update benefit")
		}
		grant = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logGrantEvent(ctx, eventlog.TypeGrantUpdated, grant,
		fmt.Sprintf("benefit of citizen %s updated", grant.CitizenID))
	return grant, nil
}

func (s *Service) GetGrant(ctx context.Context, grantID id.GrantID) (*models.Grant, error) {
	if err := requireGrantID(grantID); err != nil {
		return nil, err
	}
	g, err := s.grants.FindByID(ctx, grantID)
	if err != nil {
		return nil, wrapGrantErr(err, "failed to load benefit")
	}
	return g, nil
}

// ListByCitizen returns every grant of a citizen, newest start first.
func (s *Service) ListByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error) {
	if citizenID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "citizen ID required")
	}
	gs, err := s.grants.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list benefits")
	}
	return gs, nil
}

// ListActiveByCitizen returns active grants that have not ended before today.
func (s *Service) ListActiveByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error) {
	if citizenID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "citizen ID required")
	}
	gs, err := s.grants.ListCurrentByCitizen(ctx, citizenID, today(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list active benefits")
	}
	return gs, nil
}

// ListCurrent returns current grants across all citizens, optionally for a
// single category.
func (s *Service) ListCurrent(ctx context.Context, categoryID *id.CategoryID) ([]*models.Grant, error) {
	gs, err := s.grants.ListCurrent(ctx, today(ctx), categoryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list current benefits")
	}
	return gs, nil
}

// DeactivateGrant ends a grant early. The row is kept.
func (s *Service) DeactivateGrant(ctx context.Context, grantID id.GrantID) (*models.Grant, error) {
	if err := requireGrantID(grantID); err != nil {
		return nil, err
	}
	var grant *models.Grant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.grants.FindByID(txCtx, grantID)
		if err != nil {
			return wrapGrantErr(err, "failed to load benefit")
		}
		if err := g.Deactivate(requestcontext.Now(txCtx)); err != nil {
			return invariantToConflict(err)
		}
		if err := s.grants.Update(txCtx, g); err != nil {
			return wrapGrantErr(err, "failed to update benefit")
		}
		grant = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStatusChange("benefit_grant", string(grant.Status))
	s.logGrantEvent(ctx, eventlog.TypeGrantDeactivated, grant,
		fmt.Sprintf("benefit of citizen %s deactivated", grant.CitizenID))
	return grant, nil
}

// ExpiringGrants lists active grants ending within the next days days,
// today included, soonest first. A non-positive days uses the 30 day default.
func (s *Service) ExpiringGrants(ctx context.Context, days int) ([]*models.Grant, error) {
	if days <= 0 {
		days = models.DefaultExpiryWindowDays
	}
	from := today(ctx)
	gs, err := s.grants.ListExpiring(ctx, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list expiring benefits")
	}
	return gs, nil
}

// HasActiveCategory reports whether the citizen holds an active grant in the
// category that has no end date or ends today or later.
func (s *Service) HasActiveCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID) (bool, error) {
	return s.grants.HasCurrentInCategory(ctx, citizenID, categoryID, today(ctx))
}

// CountBeneficiaries counts citizens holding at least one active grant.
func (s *Service) CountBeneficiaries(ctx context.Context) (int, error) {
	n, err := s.grants.CountBeneficiaries(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count beneficiaries")
	}
	return n, nil
}

// claimCategory locks the citizen and category pair for the rest of the
// transaction and fails when the citizen already holds a current grant in it.
func (s *Service) claimCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID, failMsg string) error {
	if err := s.grants.LockCitizenCategory(ctx, citizenID, categoryID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, failMsg)
	}
	outcome, err := validation.CheckNoDuplicateActiveCategory(ctx, s, citizenID, categoryID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, failMsg)
	}
	if !outcome.Valid {
		return s.reject(outcome.Err())
	}
	return nil
}

func (s *Service) activeCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, wrapCategoryErr(err, "failed to load benefit category")
	}
	if !category.IsActive() {
		return nil, s.reject(dErrors.New(dErrors.CodeValidation, "benefit category is not active"))
	}
	return category, nil
}

func (s *Service) checkPeriod(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return s.reject(dErrors.New(dErrors.CodeValidation, "start date is required"))
	}
	if outcome := validation.CheckBenefitPeriod(start, end); !outcome.Valid {
		return s.reject(outcome.Err())
	}
	return nil
}

func (s *Service) prepareGrantText(number, description string) (string, string, error) {
	number = strings.TrimSpace(number)
	description = strings.TrimSpace(description)
	if err := limits.CheckStringLength("benefit number", number, limits.MaxGrantNumberLength); err != nil {
		return "", "", err
	}
	if err := limits.CheckStringLength("description", description, limits.MaxTextLength); err != nil {
		return "", "", err
	}
	return number, description, nil
}

func (s *Service) logGrantEvent(ctx context.Context, typ eventlog.Type, g *models.Grant, description string) {
	s.logEvent(ctx, typ, eventlog.EntityGrant, uuid.UUID(g.ID), description)
}

func requireGrantID(grantID id.GrantID) error {
	if grantID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "grant ID required")
	}
	return nil
}
