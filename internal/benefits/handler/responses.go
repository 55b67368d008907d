package handler

import (
	"time"

	"welfare/internal/benefits/models"
	"welfare/pkg/platform/httputil"
)

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LegalBasis  string    `json:"legal_basis,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GrantResponse struct {
	ID          string    `json:"id"`
	CitizenID   string    `json:"citizen_id"`
	CategoryID  string    `json:"category_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Number      string    `json:"number,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func toCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		LegalBasis:  c.LegalBasis,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toGrantResponse(g *models.Grant) *GrantResponse {
	resp := &GrantResponse{
		ID:          g.ID.String(),
		CitizenID:   g.CitizenID.String(),
		CategoryID:  g.CategoryID.String(),
		StartDate:   g.StartDate.Format(httputil.DateLayout),
		Number:      g.Number,
		Description: g.Description,
		Status:      string(g.Status),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.EndDate != nil {
		resp.EndDate = g.EndDate.Format(httputil.DateLayout)
	}
	if !g.CreatedBy.IsNil() {
		resp.CreatedBy = g.CreatedBy.String()
	}
	return resp
}

func toGrantResponses(gs []*models.Grant) []*GrantResponse {
	out := make([]*GrantResponse, 0, len(gs))
	for _, g := range gs {
		out = append(out, toGrantResponse(g))
	}
	return out
}

func toCountResponses(counts []models.CategoryCount) []CountResponse {
	out := make([]CountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, CountResponse{Category: c.CategoryName, Count: c.Count})
	}
	return out
}
