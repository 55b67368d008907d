package handler

import (
	"time"

	"welfare/internal/benefits/models"
	"welfare/internal/benefits/service"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/httputil"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/validation"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=2000"`
	LegalBasis  string `json:"legal_basis" validate:"max=2000"`
}

func (r *CategoryRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.Name, &r.Description, &r.LegalBasis)
}

func (r *CategoryRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *CategoryRequest) Details() models.CategoryDetails {
	return models.CategoryDetails{Name: r.Name, Description: r.Description, LegalBasis: r.LegalBasis}
}

// GrantRequest is the body of POST /benefits and PUT /benefits/{id}. On
// update citizen_id is ignored.
type GrantRequest struct {
	CitizenID   string `json:"citizen_id" validate:"omitempty,uuid"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Number      string `json:"number" validate:"max=64"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *GrantRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.CitizenID, &r.CategoryID, &r.StartDate, &r.EndDate, &r.Number, &r.Description)
}

func (r *GrantRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *GrantRequest) ToCommand() (*service.GrantCommand, error) {
	if r.CitizenID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "citizen_id is required")
	}
	citizenID, err := id.ParseCitizenID(r.CitizenID)
	if err != nil {
		return nil, err
	}
	upd, err := r.ToUpdateCommand()
	if err != nil {
		return nil, err
	}
	return &service.GrantCommand{
		CitizenID:   citizenID,
		CategoryID:  upd.CategoryID,
		StartDate:   upd.StartDate,
		EndDate:     upd.EndDate,
		Number:      upd.Number,
		Description: upd.Description,
	}, nil
}

func (r *GrantRequest) ToUpdateCommand() (*service.UpdateGrantCommand, error) {
	categoryID, err := id.ParseCategoryID(r.CategoryID)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(httputil.DateLayout, r.StartDate)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "start_date must be a date in YYYY-MM-DD format")
	}
	cmd := &service.UpdateGrantCommand{
		CategoryID:  categoryID,
		StartDate:   start,
		Number:      r.Number,
		Description: r.Description,
	}
	if r.EndDate != "" {
		end, err := time.Parse(httputil.DateLayout, r.EndDate)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "end_date must be a date in YYYY-MM-DD format")
		}
		cmd.EndDate = &end
	}
	return cmd, nil
}
