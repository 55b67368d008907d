package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"welfare/internal/eventlog"
	"welfare/internal/reports/models"
	id "welfare/pkg/domain"
)

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestBenefitsCSV(t *testing.T) {
	rows := []models.BenefitRow{
		{
			FullName:   "Abramov Ivan Petrovich",
			BirthDate:  time.Date(1950, 5, 1, 0, 0, 0, 0, time.UTC),
			Address:    "Lenina 1, apt. 4",
			Category:   "Pensioners",
			LegalBasis: "Law 7",
			Notes:      "old age",
		},
		{
			FullName:   "Petrov Ivan",
			BirthDate:  time.Date(1942, 11, 30, 0, 0, 0, 0, time.UTC),
			Address:    "Mira 12",
			Category:   "Veterans",
			LegalBasis: "Law 12 \"On veterans\"",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, BenefitsCSV(&buf, rows))
	golden(t).Assert(t, "benefits_csv", buf.Bytes())
}

func TestCertificatesCSV(t *testing.T) {
	report := &models.CertificatesReport{
		From:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:    time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		Count: 2,
		Rows: []models.CertificateRow{
			{IssueDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Type: "Status certificate", FullName: "Sidorova Anna", Notes: "for bank"},
			{IssueDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), Type: "Income certificate", FullName: "Sidorova Anna", Annulled: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, CertificatesCSV(&buf, report))
	golden(t).Assert(t, "certificates_csv", buf.Bytes())
}

func TestEmptyReportHasOnlyHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BenefitsCSV(&buf, nil))
	assert.Equal(t, "Full name,Birth date,Address,Category,Legal basis,Notes\n", buf.String())
}

func TestEventLogWorkbook(t *testing.T) {
	userID := id.UserID(uuid.MustParse("7d3f1c2a-0000-4000-8000-000000000001"))
	entityID := uuid.MustParse("7d3f1c2a-0000-4000-8000-000000000002")
	entries := []*eventlog.Entry{
		{
			ID:          id.EventID(uuid.MustParse("7d3f1c2a-0000-4000-8000-000000000003")),
			UserID:      &userID,
			Type:        eventlog.TypeCertificateIssued,
			Description: "Issued income certificate",
			EntityType:  eventlog.EntityCertificate,
			EntityID:    &entityID,
			IPAddress:   "10.0.0.7",
			UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			CreatedAt:   time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          id.EventID(uuid.MustParse("7d3f1c2a-0000-4000-8000-000000000004")),
			Type:        eventlog.TypeLoginFailed,
			Description: "Failed login for admin",
			CreatedAt:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	body, err := EventLogWorkbook(entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{EventLogSheet}, f.GetSheetList())
	rows, err := f.GetRows(EventLogSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, eventLogHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "7d3f1c2a-0000-4000-8000-000000000003", first[0])
	assert.Equal(t, userID.String(), first[1])
	assert.Equal(t, "certificate_issued", first[2])
	assert.Equal(t, entityID.String(), first[5])
	assert.Equal(t, entries[0].Device(), first[8])
	assert.Equal(t, "2025-06-10 09:30:00", first[9])

	second := rows[2]
	assert.Equal(t, "", second[1], "anonymous events have no user")
	assert.Equal(t, "login_failed", second[2])
	assert.Equal(t, "Unknown Device", second[8])
}

func TestBenefitsWorkbook(t *testing.T) {
	body, err := BenefitsWorkbook([]models.BenefitRow{{FullName: "Petrov Ivan", Category: "Veterans"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BenefitsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, benefitHeader, rows[0])
	assert.Equal(t, "Petrov Ivan", rows[1][0])
	assert.Equal(t, "Veterans", rows[1][3])
}
