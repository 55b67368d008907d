package models

import "time"

// Summary holds the headline registry totals.
type Summary struct {
	Citizens      int
	Beneficiaries int
	Certificates  int
}

// BenefitRow is one current grant joined with its holder and category.
type BenefitRow struct {
	FullName   string
	BirthDate  time.Time
	Address    string
	Category   string
	LegalBasis string
	Notes      string
}

// CertificateRow is one certificate joined with its holder.
type CertificateRow struct {
	IssueDate time.Time
	Type      string
	FullName  string
	Notes     string
	Annulled  bool
}

// CertificatesReport covers certificates issued between From and To,
// both inclusive.
type CertificatesReport struct {
	From  time.Time
	To    time.Time
	Count int
	Rows  []CertificateRow
}

// CategoryBar is one bar of the category chart.
type CategoryBar struct {
	Category string
	Citizens int
}

// Report names, used for metrics labels and event descriptions.
const (
	ReportSummary      = "summary"
	ReportBenefits     = "benefits"
	ReportCertificates = "certificates"
	ReportCategories   = "categories"
	ReportEventLog     = "event_log"
)
