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

	"welfare/internal/certificates/models"
	"welfare/internal/certificates/service/mocks"
	"welfare/internal/certificates/store"
	citizenmodels "welfare/internal/citizens/models"
	citizenstore "welfare/internal/citizens/store/citizen"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/requestcontext"
)

// CertificateServiceSuite issues and queries certificates against in-memory
// stores.
//
// Justification: the issue date rule depends on the request clock and
// annulled certificates must stay visible only where asked for.
type CertificateServiceSuite struct {
	suite.Suite
	ctx      context.Context
	today    time.Time
	clerk    id.UserID
	citizens *citizenstore.InMemory
	events   *eventlog.InMemoryStore
	metrics  *metrics.Metrics
	svc      *Service
}

func TestCertificateServiceSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceSuite))
}

func (s *CertificateServiceSuite) SetupTest() {
	s.today = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	s.clerk = id.UserID(uuid.New())
	ctx := requestcontext.WithTime(context.Background(), s.today.Add(9*time.Hour))
	s.ctx = requestcontext.WithUser(ctx, s.clerk, "operator")
	s.citizens = citizenstore.NewInMemory()
	s.events = eventlog.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(store.NewInMemory(), s.citizens,
		WithMetrics(s.metrics),
		WithEventLogger(eventlog.NewLogger(s.events)),
	)
}

func (s *CertificateServiceSuite) addCitizen(lastName, identifier string) id.CitizenID {
	c := &citizenmodels.Citizen{
		ID:         id.CitizenID(uuid.New()),
		LastName:   lastName,
		FirstName:  "Anna",
		BirthDate:  time.Date(1961, 3, 4, 0, 0, 0, 0, time.UTC),
		Identifier: identifier,
		Status:     citizenmodels.StatusActive,
	}
	s.Require().NoError(s.citizens.Create(context.Background(), c))
	return c.ID
}

func (s *CertificateServiceSuite) issue(citizenID id.CitizenID, typ models.Type, daysAgo int) *models.Certificate {
	c, err := s.svc.Issue(s.ctx, &CertificateCommand{
		CitizenID: citizenID,
		Type:      typ,
		IssueDate: s.today.AddDate(0, 0, -daysAgo),
	})
	s.Require().NoError(err)
	return c
}

func (s *CertificateServiceSuite) TestIssue() {
	citizenID := s.addCitizen("Petrova", "11223344595")

	s.Run("records the issuing user", func() {
		c, err := s.svc.Issue(s.ctx, &CertificateCommand{
			CitizenID: citizenID,
			Type:      models.TypeIncome,
			IssueDate: s.today.Add(7 * time.Hour),
			Notes:     "  for the housing office ",
		})
		s.Require().NoError(err)
		s.Equal(s.clerk, c.IssuedBy)
		s.Equal(s.today, c.IssueDate)
		s.Equal("for the housing office", c.Notes)
		s.Equal(models.StatusActive, c.Status)
		s.Equal([]eventlog.Type{eventlog.TypeCertificateIssued}, s.loggedTypes())
	})

	cases := []struct {
		name string
		cmd  *CertificateCommand
		code dErrors.Code
	}{
		{"missing command", nil, dErrors.CodeBadRequest},
		{"future issue date", &CertificateCommand{CitizenID: citizenID, Type: models.TypeStatus, IssueDate: s.today.AddDate(0, 0, 1)}, dErrors.CodeValidation},
		{"unknown type", &CertificateCommand{CitizenID: citizenID, Type: "pension", IssueDate: s.today}, dErrors.CodeValidation},
		{"missing date", &CertificateCommand{CitizenID: citizenID, Type: models.TypeStatus}, dErrors.CodeValidation},
		{"unknown citizen", &CertificateCommand{CitizenID: id.CitizenID(uuid.New()), Type: models.TypeStatus, IssueDate: s.today}, dErrors.CodeNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.Issue(s.ctx, tc.cmd)
			s.True(dErrors.HasCode(err, tc.code), "got %v", err)
		})
	}

	s.Equal(float64(3), promtestutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues("validation")))
}

func (s *CertificateServiceSuite) TestAnnulFreezesCertificate() {
	citizenID := s.addCitizen("Petrova", "11223344595")
	c := s.issue(citizenID, models.TypeBenefits, 3)

	annulled, err := s.svc.Annul(s.ctx, c.ID)
	s.Require().NoError(err)
	s.True(annulled.IsAnnulled())

	s.Run("second annul conflicts", func() {
		_, err := s.svc.Annul(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("update conflicts", func() {
		_, err := s.svc.Update(s.ctx, c.ID, &CertificateCommand{CitizenID: citizenID, Type: models.TypeIncome, IssueDate: s.today})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("hidden from default listing", func() {
		listed, err := s.svc.List(s.ctx, ListQuery{})
		s.Require().NoError(err)
		s.Empty(listed)

		listed, err = s.svc.List(s.ctx, ListQuery{IncludeAnnulled: true})
		s.Require().NoError(err)
		s.Len(listed, 1)
	})

	s.Run("unknown certificate", func() {
		_, err := s.svc.Annul(s.ctx, id.CertificateID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.ElementsMatch([]eventlog.Type{eventlog.TypeCertificateIssued, eventlog.TypeCertificateAnnulled}, s.loggedTypes())
}

func (s *CertificateServiceSuite) TestUpdate() {
	first := s.addCitizen("Petrova", "11223344595")
	second := s.addCitizen("Orlova", "12345678964")
	c := s.issue(first, models.TypeBenefits, 3)

	updated, err := s.svc.Update(s.ctx, c.ID, &CertificateCommand{
		CitizenID: second,
		Type:      models.TypeFamilyComposition,
		IssueDate: s.today.AddDate(0, 0, -1),
		Notes:     "corrected holder",
	})
	s.Require().NoError(err)
	s.Equal(second, updated.CitizenID)
	s.Equal(s.clerk, updated.IssuedBy)

	got, err := s.svc.Get(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.TypeFamilyComposition, got.Type)
}

func (s *CertificateServiceSuite) TestList() {
	petrova := s.addCitizen("Petrova", "11223344595")
	orlova := s.addCitizen("Orlova", "12345678964")
	s.issue(petrova, models.TypeIncome, 10)
	latest := s.issue(petrova, models.TypeStatus, 1)
	s.issue(orlova, models.TypeIncome, 5)

	s.Run("newest first", func() {
		listed, err := s.svc.List(s.ctx, ListQuery{})
		s.Require().NoError(err)
		s.Require().Len(listed, 3)
		s.Equal(latest.ID, listed[0].ID)
	})

	s.Run("by type and range", func() {
		from := s.today.AddDate(0, 0, -7)
		listed, err := s.svc.List(s.ctx, ListQuery{Type: models.TypeIncome, From: &from})
		s.Require().NoError(err)
		s.Require().Len(listed, 1)
		s.Equal(orlova, listed[0].CitizenID)
	})

	s.Run("name search", func() {
		listed, err := s.svc.List(s.ctx, ListQuery{Search: "petr"})
		s.Require().NoError(err)
		s.Len(listed, 2)
	})

	s.Run("name search narrowed by citizen", func() {
		listed, err := s.svc.List(s.ctx, ListQuery{Search: "petr", CitizenID: &orlova})
		s.Require().NoError(err)
		s.Empty(listed)
	})

	s.Run("search without match", func() {
		listed, err := s.svc.List(s.ctx, ListQuery{Search: "Ivanov"})
		s.Require().NoError(err)
		s.Empty(listed)
	})

	s.Run("inverted range", func() {
		from, to := s.today, s.today.AddDate(0, 0, -1)
		_, err := s.svc.List(s.ctx, ListQuery{From: &from, To: &to})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown type", func() {
		_, err := s.svc.List(s.ctx, ListQuery{Type: "pension"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *CertificateServiceSuite) TestCounts() {
	citizenID := s.addCitizen("Petrova", "11223344595")
	s.issue(citizenID, models.TypeIncome, 40)
	s.issue(citizenID, models.TypeIncome, 2)
	annulled := s.issue(citizenID, models.TypeBenefits, 2)
	_, err := s.svc.Annul(s.ctx, annulled.ID)
	s.Require().NoError(err)

	s.Run("statistics skip annulled and empty types", func() {
		stats, err := s.svc.Statistics(s.ctx)
		s.Require().NoError(err)
		s.Equal([]models.TypeCount{{Type: models.TypeIncome, Count: 2}}, stats)
	})

	s.Run("range is inclusive", func() {
		n, err := s.svc.CountInRange(s.ctx, s.today.AddDate(0, 0, -2), s.today)
		s.Require().NoError(err)
		s.Equal(2, n)
	})

	s.Run("inverted range", func() {
		_, err := s.svc.CountInRange(s.ctx, s.today, s.today.AddDate(0, 0, -1))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	n, err := s.svc.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *CertificateServiceSuite) TestStoreFailuresAreInternal() {
	ctrl := gomock.NewController(s.T())
	certificates := mocks.NewMockStore(ctrl)
	citizens := mocks.NewMockCitizenDirectory(ctrl)
	events := mocks.NewMockEventLogger(ctrl)
	svc := New(certificates, citizens, WithEventLogger(events))

	citizenID := id.CitizenID(uuid.New())
	citizens.EXPECT().FindByID(gomock.Any(), citizenID).Return(&citizenmodels.Citizen{ID: citizenID}, nil)
	certificates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.Issue(s.ctx, &CertificateCommand{CitizenID: citizenID, Type: models.TypeStatus, IssueDate: s.today})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	s.Run("search failure", func() {
		citizens.EXPECT().SearchByName(gomock.Any(), "petr").Return(nil, errors.New("timeout"))
		_, err := svc.List(s.ctx, ListQuery{Search: " petr "})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *CertificateServiceSuite) loggedTypes() []eventlog.Type {
	entries, err := s.events.Filter(context.Background(), eventlog.Filter{})
	s.Require().NoError(err)
	types := make([]eventlog.Type, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.Type)
	}
	return types
}
