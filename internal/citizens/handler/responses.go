package handler

import (
	"time"

	"welfare/internal/citizens/models"
	"welfare/pkg/platform/httputil"
)

type CitizenResponse struct {
	ID         string    `json:"id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name,omitempty"`
	FullName   string    `json:"full_name"`
	BirthDate  string    `json:"birth_date"`
	Identifier string    `json:"identifier"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	RegionID   string    `json:"region_id,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RegionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegionCountResponse struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// Identifiers and phones are rendered in display format; stored values stay
// canonical.
func toCitizenResponse(c *models.Citizen) *CitizenResponse {
	resp := &CitizenResponse{
		ID:         c.ID.String(),
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		FullName:   c.FullName(),
		BirthDate:  c.BirthDate.Format(httputil.DateLayout),
		Identifier: c.FormattedIdentifier(),
		Phone:      c.FormattedPhone(),
		Email:      c.Email,
		Address:    c.Address,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.RegionID != nil {
		resp.RegionID = c.RegionID.String()
	}
	return resp
}

func toCitizenResponses(cs []*models.Citizen) []*CitizenResponse {
	out := make([]*CitizenResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCitizenResponse(c))
	}
	return out
}

func toRegionResponse(r *models.Region) *RegionResponse {
	return &RegionResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
