package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"welfare/internal/benefits/models"
	"welfare/internal/eventlog"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/requestcontext"
)

// CreateCategory adds an active benefit category. Names are unique ignoring
// case.
func (s *Service) CreateCategory(ctx context.Context, d models.CategoryDetails) (*models.Category, error) {
	var category *models.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := models.NewCategory(id.CategoryID(uuid.New()), d, requestcontext.Now(txCtx))
		if err != nil {
			return s.reject(err)
		}
		if err := s.categories.Create(txCtx, c); err != nil {
			return wrapCategoryErr(err, "failed to create benefit category")
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("benefit_category")
	s.logCategoryEvent(ctx, eventlog.TypeCategoryCreated, category, "benefit category %s created")
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID id.CategoryID, d models.CategoryDetails) (*models.Category, error) {
	if err := requireCategoryID(categoryID); err != nil {
		return nil, err
	}
	var category *models.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.FindByID(txCtx, categoryID)
		if err != nil {
			return wrapCategoryErr(err, "failed to load benefit category")
		}
		if err := c.Edit(d, requestcontext.Now(txCtx)); err != nil {
			return s.reject(err)
		}
		if err := s.categories.Update(txCtx, c); err != nil {
			return wrapCategoryErr(err, "failed to update benefit category")
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logCategoryEvent(ctx, eventlog.TypeCategoryUpdated, category, "benefit category %s updated")
	return category, nil
}

func (s *Service) GetCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	if err := requireCategoryID(categoryID); err != nil {
		return nil, err
	}
	c, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, wrapCategoryErr(err, "failed to load benefit category")
	}
	return c, nil
}

// ListCategories returns categories ordered by name.
func (s *Service) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	cs, err := s.categories.List(ctx, activeOnly)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list benefit categories")
	}
	return cs, nil
}

// DeactivateCategory hides a category from new grants. Existing grants keep
// referring to it.
func (s *Service) DeactivateCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	return s.transitionCategory(ctx, categoryID, false)
}

func (s *Service) ReactivateCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	return s.transitionCategory(ctx, categoryID, true)
}

func (s *Service) transitionCategory(ctx context.Context, categoryID id.CategoryID, activate bool) (*models.Category, error) {
	if err := requireCategoryID(categoryID); err != nil {
		return nil, err
	}
	var category *models.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.categories.FindByID(txCtx, categoryID)
		if err != nil {
			return wrapCategoryErr(err, "failed to load benefit category")
		}
		change := c.Deactivate
		if activate {
			change = c.Reactivate
		}
		if err := change(requestcontext.Now(txCtx)); err != nil {
			return invariantToConflict(err)
		}
		if err := s.categories.Update(txCtx, c); err != nil {
			return wrapCategoryErr(err, "failed to update benefit category")
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStatusChange("benefit_category", string(category.Status))
	if activate {
		s.logCategoryEvent(ctx, eventlog.TypeCategoryReactivated, category, "benefit category %s reactivated")
	} else {
		s.logCategoryEvent(ctx, eventlog.TypeCategoryDeactivated, category, "benefit category %s deactivated")
	}
	return category, nil
}

// CategoryStatistics counts active grants per category name, ordered by
// name. Categories without active grants are omitted.
func (s *Service) CategoryStatistics(ctx context.Context) ([]models.CategoryCount, error) {
	counts, err := s.grants.CountActiveByCategory(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count benefits by category")
	}
	categories, err := s.categories.List(ctx, false)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list benefit categories")
	}
	out := make([]models.CategoryCount, 0, len(counts))
	for _, c := range categories {
		if n := counts[c.ID]; n > 0 {
			out = append(out, models.CategoryCount{CategoryName: c.Name, Count: n})
		}
	}
	return out, nil
}

// CitizenCountByCategory counts distinct citizens holding an active grant in
// the category.
func (s *Service) CitizenCountByCategory(ctx context.Context, categoryID id.CategoryID) (int, error) {
	if err := requireCategoryID(categoryID); err != nil {
		return 0, err
	}
	n, err := s.grants.CountCitizensInCategory(ctx, categoryID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count citizens in category")
	}
	return n, nil
}

// CategoryCitizenCounts reports CitizenCountByCategory for every active
// category, zero counts included. It feeds the category chart.
func (s *Service) CategoryCitizenCounts(ctx context.Context) ([]models.CategoryCount, error) {
	categories, err := s.categories.List(ctx, true)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list benefit categories")
	}
	out := make([]models.CategoryCount, 0, len(categories))
	for _, c := range categories {
		n, err := s.CitizenCountByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.CategoryCount{CategoryName: c.Name, Count: n})
	}
	return out, nil
}

func (s *Service) logCategoryEvent(ctx context.Context, typ eventlog.Type, c *models.Category, format string) {
	s.logEvent(ctx, typ, eventlog.EntityCategory, uuid.UUID(c.ID), fmt.Sprintf(format, c.Name))
}

// reject counts a validation failure by its kind and passes err through.
func (s *Service) reject(err error) error {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation:
		s.metrics.IncValidationFailure("validation")
	case dErrors.CodeConstraintViolation:
		s.metrics.IncValidationFailure("constraint")
	}
	return err
}

func requireCategoryID(categoryID id.CategoryID) error {
	if categoryID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "category ID required")
	}
	return nil
}
