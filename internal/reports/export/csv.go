// Package export renders report rows as CSV and XLSX documents.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"welfare/internal/reports/models"
)

const dateLayout = time.DateOnly

var (
	benefitHeader     = []string{"Full name", "Birth date", "Address", "Category", "Legal basis", "Notes"}
	certificateHeader = []string{"Issue date", "Type", "Citizen", "Notes", "Annulled"}
)

// BenefitsCSV writes the benefits report with a header row.
func BenefitsCSV(w io.Writer, rows []models.BenefitRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(benefitHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(benefitRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CertificatesCSV writes the certificate rows of report with a header row.
func CertificatesCSV(w io.Writer, report *models.CertificatesReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(certificateHeader); err != nil {
		return err
	}
	for _, r := range report.Rows {
		if err := cw.Write(certificateRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func benefitRecord(r models.BenefitRow) []string {
	return []string{r.FullName, formatDate(r.BirthDate), r.Address, r.Category, r.LegalBasis, r.Notes}
}

func certificateRecord(r models.CertificateRow) []string {
	return []string{formatDate(r.IssueDate), r.Type, r.FullName, r.Notes, strconv.FormatBool(r.Annulled)}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
