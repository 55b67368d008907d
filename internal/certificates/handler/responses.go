package handler

import (
	"time"

	"welfare/internal/certificates/models"
	"welfare/pkg/platform/httputil"
)

type CertificateResponse struct {
	ID        string    `json:"id"`
	CitizenID string    `json:"citizen_id"`
	Type      string    `json:"type"`
	TypeTitle string    `json:"type_title"`
	IssueDate string    `json:"issue_date"`
	Notes     string    `json:"notes,omitempty"`
	IssuedBy  string    `json:"issued_by,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TypeResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type TypeCountResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

type CountResponse struct {
	Count int `json:"count"`
}

func toCertificateResponse(c *models.Certificate) *CertificateResponse {
	resp := &CertificateResponse{
		ID:        c.ID.String(),
		CitizenID: c.CitizenID.String(),
		Type:      string(c.Type),
		TypeTitle: c.Type.Title(),
		IssueDate: c.IssueDate.Format(httputil.DateLayout),
		Notes:     c.Notes,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if !c.IssuedBy.IsNil() {
		resp.IssuedBy = c.IssuedBy.String()
	}
	return resp
}
