package models

import (
	"strings"
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/validation"
)

// MinCategoryNameLength is counted in runes after trimming.
const MinCategoryNameLength = 3

type Category struct {
	ID          id.CategoryID
	Name        string
	Description string
	LegalBasis  string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryDetails are the editable fields of a category.
type CategoryDetails struct {
	Name        string
	Description string
	LegalBasis  string
}

func NewCategory(categoryID id.CategoryID, d CategoryDetails, now time.Time) (*Category, error) {
	d, err := checkCategoryDetails(d)
	if err != nil {
		return nil, err
	}
	return &Category{
		ID:          categoryID,
		Name:        d.Name,
		Description: d.Description,
		LegalBasis:  d.LegalBasis,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Edit replaces the editable fields. Name uniqueness is enforced by the store.
func (c *Category) Edit(d CategoryDetails, now time.Time) error {
	d, err := checkCategoryDetails(d)
	if err != nil {
		return err
	}
	c.Name = d.Name
	c.Description = d.Description
	c.LegalBasis = d.LegalBasis
	c.UpdatedAt = now
	return nil
}

func (c *Category) IsActive() bool {
	return c.Status == StatusActive
}

func (c *Category) Deactivate(now time.Time) error {
	if c.Status == StatusInactive {
		return dErrors.New(dErrors.CodeInvariantViolation, "category is already inactive")
	}
	c.Status = StatusInactive
	c.UpdatedAt = now
	return nil
}

func (c *Category) Reactivate(now time.Time) error {
	if c.Status == StatusActive {
		return dErrors.New(dErrors.CodeInvariantViolation, "category is already active")
	}
	c.Status = StatusActive
	c.UpdatedAt = now
	return nil
}

func checkCategoryDetails(d CategoryDetails) (CategoryDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.LegalBasis = strings.TrimSpace(d.LegalBasis)
	if !validation.IsNotEmpty(d.Name) {
		return d, dErrors.New(dErrors.CodeValidation, "category name is required")
	}
	if !validation.HasMinLength(d.Name, MinCategoryNameLength) {
		return d, dErrors.New(dErrors.CodeValidation, "category name must be at least 3 characters")
	}
	if err := limits.CheckStringLength("category name", d.Name, limits.MaxNameLength); err != nil {
		return d, err
	}
	if err := limits.CheckStringLength("description", d.Description, limits.MaxTextLength); err != nil {
		return d, err
	}
	if err := limits.CheckStringLength("legal basis", d.LegalBasis, limits.MaxTextLength); err != nil {
		return d, err
	}
	return d, nil
}
