package handler

import (
	"strings"
	"time"

	"welfare/internal/citizens/service"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/httputil"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/validation"
)

// CitizenRequest is the body of create and update. Field rules that carry a
// distinct error kind (identifier format, checksum, uniqueness) are left to
// the service so clients see the same errors regardless of entry point.
type CitizenRequest struct {
	LastName   string `json:"last_name" validate:"required,max=128"`
	FirstName  string `json:"first_name" validate:"required,max=128"`
	MiddleName string `json:"middle_name" validate:"max=128"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Identifier string `json:"identifier" validate:"required,max=32"`
	Phone      string `json:"phone" validate:"max=32"`
	Email      string `json:"email" validate:"max=255"`
	Address    string `json:"address" validate:"max=512"`
	RegionID   string `json:"region_id" validate:"omitempty,uuid"`
}

func (r *CitizenRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.LastName, &r.FirstName, &r.MiddleName, &r.BirthDate,
		&r.Identifier, &r.Phone, &r.Email, &r.Address, &r.RegionID)
}

func (r *CitizenRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *CitizenRequest) ToCommand() (*service.CitizenCommand, error) {
	birthDate, err := time.Parse(httputil.DateLayout, r.BirthDate)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "birth_date must be a date in YYYY-MM-DD format")
	}
	cmd := &service.CitizenCommand{
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		BirthDate:  birthDate,
		Identifier: r.Identifier,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
	}
	if r.RegionID != "" {
		regionID, err := id.ParseRegionID(r.RegionID)
		if err != nil {
			return nil, err
		}
		cmd.RegionID = &regionID
	}
	return cmd, nil
}

type RegionRequest struct {
	Name string `json:"name" validate:"required,notblank,max=128"`
}

func (r *RegionRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
}

func (r *RegionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}
