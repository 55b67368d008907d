package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	benefitmodels "welfare/internal/benefits/models"
	certmodels "welfare/internal/certificates/models"
	certservice "welfare/internal/certificates/service"
	citizenmodels "welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	"welfare/internal/reports/models"
	"welfare/internal/reports/service/mocks"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

// ReportServiceSuite drives report assembly against mocked registry
// sources.
//
// Justification: reports join three services, and the region filter and row
// order are only observable at this layer.
type ReportServiceSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	citizens     *mocks.MockCitizenSource
	benefits     *mocks.MockBenefitSource
	certificates *mocks.MockCertificateSource
	eventLog     *mocks.MockEventSource
	events       *eventlog.InMemoryStore
	metrics      *metrics.Metrics
	svc          *Service

	north   id.RegionID
	south   id.RegionID
	veteran *benefitmodels.Category
	pension *benefitmodels.Category
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.citizens = mocks.NewMockCitizenSource(s.ctrl)
	s.benefits = mocks.NewMockBenefitSource(s.ctrl)
	s.certificates = mocks.NewMockCertificateSource(s.ctrl)
	s.eventLog = mocks.NewMockEventSource(s.ctrl)
	s.events = eventlog.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(s.citizens, s.benefits, s.certificates, s.eventLog,
		WithMetrics(s.metrics),
		WithEventLogger(eventlog.NewLogger(s.events)),
	)

	s.north = id.RegionID(uuid.New())
	s.south = id.RegionID(uuid.New())
	s.veteran = &benefitmodels.Category{ID: id.CategoryID(uuid.New()), Name: "Veterans", LegalBasis: "Law 12"}
	s.pension = &benefitmodels.Category{ID: id.CategoryID(uuid.New()), Name: "Pensioners", LegalBasis: "Law 7"}
}

func (s *ReportServiceSuite) citizen(lastName string, region *id.RegionID) *citizenmodels.Citizen {
	return &citizenmodels.Citizen{
		ID:        id.CitizenID(uuid.New()),
		LastName:  lastName,
		FirstName: "Ivan",
		BirthDate: time.Date(1950, 5, 1, 0, 0, 0, 0, time.UTC),
		Address:   lastName + " street 1",
		RegionID:  region,
		Status:    citizenmodels.StatusActive,
	}
}

func grant(c *citizenmodels.Citizen, cat *benefitmodels.Category, description string) *benefitmodels.Grant {
	return &benefitmodels.Grant{
		ID:          id.GrantID(uuid.New()),
		CitizenID:   c.ID,
		CategoryID:  cat.ID,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: description,
		Status:      benefitmodels.StatusActive,
	}
}

func (s *ReportServiceSuite) reportEvents() []*eventlog.Entry {
	entries, err := s.events.Filter(context.Background(), eventlog.Filter{Type: eventlog.TypeReportGenerated})
	s.Require().NoError(err)
	return entries
}

func (s *ReportServiceSuite) TestSummary() {
	s.Run("collects all three totals", func() {
		s.citizens.EXPECT().Count(gomock.Any()).Return(12, nil)
		s.benefits.EXPECT().CountBeneficiaries(gomock.Any()).Return(5, nil)
		s.certificates.EXPECT().Count(gomock.Any()).Return(30, nil)

		summary, err := s.svc.Summary(s.ctx)
		s.Require().NoError(err)
		s.Equal(models.Summary{Citizens: 12, Beneficiaries: 5, Certificates: 30}, *summary)
		s.Equal(float64(1), promtestutil.ToFloat64(s.metrics.ReportsGenerated.WithLabelValues(models.ReportSummary)))
		s.Len(s.reportEvents(), 1)
	})

	s.Run("any failing source fails the summary", func() {
		s.citizens.EXPECT().Count(gomock.Any()).Return(12, nil).AnyTimes()
		s.benefits.EXPECT().CountBeneficiaries(gomock.Any()).Return(0, errors.New("connection reset")).AnyTimes()
		s.certificates.EXPECT().Count(gomock.Any()).Return(30, nil).AnyTimes()

		_, err := s.svc.Summary(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ReportServiceSuite) TestBenefitsReport() {
	petrov := s.citizen("Petrov", &s.north)
	abramov := s.citizen("Abramov", &s.south)
	nomad := s.citizen("Zorin", nil)
	grants := []*benefitmodels.Grant{
		grant(petrov, s.veteran, "war veteran"),
		grant(abramov, s.pension, "old age"),
		grant(petrov, s.pension, "old age"),
		grant(nomad, s.pension, ""),
	}

	expectJoin := func(categoryID *id.CategoryID, gs []*benefitmodels.Grant) {
		s.benefits.EXPECT().ListCategories(gomock.Any(), false).
			Return([]*benefitmodels.Category{s.veteran, s.pension}, nil)
		s.benefits.EXPECT().ListCurrent(gomock.Any(), categoryID).Return(gs, nil)
		s.citizens.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ids []id.CitizenID) ([]*citizenmodels.Citizen, error) {
				s.Len(ids, 3, "holder ids must be deduplicated")
				return []*citizenmodels.Citizen{petrov, abramov, nomad}, nil
			})
	}

	s.Run("all current grants ordered by holder then category", func() {
		expectJoin(nil, grants)

		rows, err := s.svc.BenefitsReport(s.ctx, nil, nil)
		s.Require().NoError(err)
		s.Require().Len(rows, 4)
		s.Equal("Abramov Ivan", rows[0].FullName)
		s.Equal("Petrov Ivan", rows[1].FullName)
		s.Equal("Pensioners", rows[1].Category)
		s.Equal("Veterans", rows[2].Category)
		s.Equal("Law 12", rows[2].LegalBasis)
		s.Equal("war veteran", rows[2].Notes)
		s.Equal("Zorin Ivan", rows[3].FullName)
	})

	s.Run("region filter drops citizens outside or without a region", func() {
		expectJoin(nil, grants)

		rows, err := s.svc.BenefitsReport(s.ctx, nil, &s.north)
		s.Require().NoError(err)
		s.Require().Len(rows, 2)
		for _, r := range rows {
			s.Equal("Petrov Ivan", r.FullName)
		}
	})

	s.Run("unknown category is not found", func() {
		s.benefits.EXPECT().ListCategories(gomock.Any(), false).
			Return([]*benefitmodels.Category{s.veteran}, nil)
		missing := id.CategoryID(uuid.New())

		_, err := s.svc.BenefitsReport(s.ctx, &missing, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("no grants means no citizen lookup", func() {
		s.benefits.EXPECT().ListCategories(gomock.Any(), false).
			Return([]*benefitmodels.Category{s.veteran}, nil)
		s.benefits.EXPECT().ListCurrent(gomock.Any(), &s.veteran.ID).Return(nil, nil)

		rows, err := s.svc.BenefitsReport(s.ctx, &s.veteran.ID, nil)
		s.Require().NoError(err)
		s.Empty(rows)
	})
}

func (s *ReportServiceSuite) TestCertificatesReport() {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	holder := s.citizen("Sidorova", nil)

	s.Run("rows sorted by issue date with holder names", func() {
		s.certificates.EXPECT().List(gomock.Any(), certservice.ListQuery{From: &from, To: &to}).
			Return([]*certmodels.Certificate{
				{CitizenID: holder.ID, Type: certmodels.TypeIncome, IssueDate: to},
				{CitizenID: holder.ID, Type: certmodels.TypeStatus, IssueDate: from, Notes: "for bank"},
			}, nil)
		s.citizens.EXPECT().FindByIDs(gomock.Any(), []id.CitizenID{holder.ID}).
			Return([]*citizenmodels.Citizen{holder}, nil)

		report, err := s.svc.CertificatesReport(s.ctx, from, to)
		s.Require().NoError(err)
		s.Equal(2, report.Count)
		s.Equal("Status certificate", report.Rows[0].Type)
		s.Equal("for bank", report.Rows[0].Notes)
		s.Equal("Sidorova Ivan", report.Rows[1].FullName)
	})

	s.Run("inverted range is rejected before any lookup", func() {
		_, err := s.svc.CertificatesReport(s.ctx, to, from)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ReportServiceSuite) TestCategoryChart() {
	s.benefits.EXPECT().CategoryCitizenCounts(gomock.Any()).Return([]benefitmodels.CategoryCount{
		{CategoryName: "Veterans", Count: 3},
		{CategoryName: "Pensioners", Count: 0},
	}, nil)

	bars, err := s.svc.CategoryChart(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.CategoryBar{{Category: "Veterans", Citizens: 3}, {Category: "Pensioners", Citizens: 0}}, bars)
}

func (s *ReportServiceSuite) TestEventLog() {
	s.Run("passes the filter through", func() {
		f := eventlog.Filter{Type: eventlog.TypeLogin, Limit: 10}
		s.eventLog.EXPECT().Filter(gomock.Any(), f).Return([]*eventlog.Entry{{Type: eventlog.TypeLogin}}, nil)

		entries, err := s.svc.EventLog(s.ctx, f)
		s.Require().NoError(err)
		s.Len(entries, 1)
		s.Equal(float64(1), promtestutil.ToFloat64(s.metrics.ReportsGenerated.WithLabelValues(models.ReportEventLog)))
	})

	s.Run("source errors keep their code and log nothing", func() {
		before := len(s.reportEvents())
		s.eventLog.EXPECT().Filter(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "from must not be after to"))

		_, err := s.svc.EventLog(s.ctx, eventlog.Filter{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Len(s.reportEvents(), before)
	})
}
