package handler

import (
	"time"

	"welfare/internal/certificates/models"
	"welfare/internal/certificates/service"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/httputil"
	pstrings "welfare/pkg/platform/strings"
	"welfare/pkg/validation"
)

// CertificateRequest is the body of POST /certificates and
// PUT /certificates/{id}.
type CertificateRequest struct {
	CitizenID string `json:"citizen_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=benefits status income family_composition"`
	IssueDate string `json:"issue_date" validate:"required,datetime=2006-01-02"`
	Notes     string `json:"notes" validate:"max=2000"`
}

func (r *CertificateRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimSpace(&r.CitizenID, &r.Type, &r.IssueDate, &r.Notes)
}

func (r *CertificateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

func (r *CertificateRequest) ToCommand() (*service.CertificateCommand, error) {
	citizenID, err := id.ParseCitizenID(r.CitizenID)
	if err != nil {
		return nil, err
	}
	issued, err := time.Parse(httputil.DateLayout, r.IssueDate)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "issue_date must be a date in YYYY-MM-DD format")
	}
	return &service.CertificateCommand{
		CitizenID: citizenID,
		Type:      models.Type(r.Type),
		IssueDate: issued,
		Notes:     r.Notes,
	}, nil
}
