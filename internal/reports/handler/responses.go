package handler

import (
	"welfare/internal/reports/models"
	"welfare/pkg/platform/httputil"
)

type SummaryResponse struct {
	Citizens      int `json:"citizens"`
	Beneficiaries int `json:"beneficiaries"`
	Certificates  int `json:"certificates"`
}

type BenefitRowResponse struct {
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Address    string `json:"address,omitempty"`
	Category   string `json:"category"`
	LegalBasis string `json:"legal_basis,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type CertificateRowResponse struct {
	IssueDate string `json:"issue_date"`
	Type      string `json:"type"`
	FullName  string `json:"full_name"`
	Notes     string `json:"notes,omitempty"`
	Annulled  bool   `json:"annulled"`
}

type CertificatesReportResponse struct {
	From  string                   `json:"from"`
	To    string                   `json:"to"`
	Count int                      `json:"count"`
	Rows  []CertificateRowResponse `json:"rows"`
}

type CategoryBarResponse struct {
	Category string `json:"category"`
	Citizens int    `json:"citizens"`
}

func toBenefitRows(rows []models.BenefitRow) []BenefitRowResponse {
	out := make([]BenefitRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BenefitRowResponse{
			FullName:   r.FullName,
			BirthDate:  r.BirthDate.Format(httputil.DateLayout),
			Address:    r.Address,
			Category:   r.Category,
			LegalBasis: r.LegalBasis,
			Notes:      r.Notes,
		})
	}
	return out
}

func toCertificatesReport(report *models.CertificatesReport) *CertificatesReportResponse {
	resp := &CertificatesReportResponse{
		From:  report.From.Format(httputil.DateLayout),
		To:    report.To.Format(httputil.DateLayout),
		Count: report.Count,
		Rows:  make([]CertificateRowResponse, 0, len(report.Rows)),
	}
	for _, r := range report.Rows {
		resp.Rows = append(resp.Rows, CertificateRowResponse{
			IssueDate: r.IssueDate.Format(httputil.DateLayout),
			Type:      r.Type,
			FullName:  r.FullName,
			Notes:     r.Notes,
			Annulled:  r.Annulled,
		})
	}
	return resp
}
