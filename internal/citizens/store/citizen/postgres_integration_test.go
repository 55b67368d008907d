//go:build integration

package citizen_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"welfare/internal/citizens/models"
	"welfare/internal/citizens/store/citizen"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	"welfare/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *citizen.PostgresStore
	regionID id.RegionID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = citizen.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateModuleTables(ctx))
	s.regionID = s.postgres.CreateTestRegion(ctx, s.T(), "Region "+uuid.NewString())
}

func (s *PostgresStoreSuite) newCitizen(last, identifier string) *models.Citizen {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Citizen{
		ID:         id.CitizenID(uuid.New()),
		LastName:   last,
		FirstName:  "Anna",
		MiddleName: "Sergeevna",
		BirthDate:  time.Date(1975, 5, 20, 0, 0, 0, 0, time.UTC),
		Identifier: identifier,
		Phone:      "79161234567",
		RegionID:   &s.regionID,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *PostgresStoreSuite) TestRoundTripAndUniqueness() {
	ctx := context.Background()
	c := s.newCitizen("Orlova", "11223344595")
	s.Require().NoError(s.store.Create(ctx, c))

	got, err := s.store.FindByIdentifier(ctx, "11223344595")
	s.Require().NoError(err)
	s.Equal(c.ID, got.ID)
	s.Require().NotNil(got.RegionID)
	s.Equal(s.regionID, *got.RegionID)
	s.True(c.BirthDate.Equal(got.BirthDate))

	err = s.store.Create(ctx, s.newCitizen("Copy", "11223344595"))
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)

	exists, err := s.store.IdentifierExists(ctx, "11223344595", uuid.UUID(c.ID))
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.store.FindByID(ctx, id.CitizenID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSearchAndBatch() {
	ctx := context.Background()
	a := s.newCitizen("Ivanova", "11223344595")
	b := s.newCitizen("Petrov", "12345678964")
	b.MiddleName = ""
	c := s.newCitizen("100%_Literal", "98765432183")
	c.RegionID = nil
	for _, x := range []*models.Citizen{a, b, c} {
		s.Require().NoError(s.store.Create(ctx, x))
	}

	found, err := s.store.SearchByName(ctx, "IVAN")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(a.ID, found[0].ID)

	found, err = s.store.SearchByName(ctx, "%_")
	s.Require().NoError(err)
	s.Require().Len(found, 1, "LIKE wildcards are matched literally")

	batch, err := s.store.FindByIDs(ctx, []id.CitizenID{b.ID, a.ID, id.CitizenID(uuid.New())})
	s.Require().NoError(err)
	s.Require().Len(batch, 2)
	s.Equal("Ivanova", batch[0].LastName)

	counts, err := s.store.CountActiveByRegion(ctx)
	s.Require().NoError(err)
	s.Equal(map[id.RegionID]int{s.regionID: 2}, counts)

	b.Status = models.StatusInactive
	s.Require().NoError(s.store.Update(ctx, b))
	inRegion, err := s.store.ListByRegion(ctx, s.regionID)
	s.Require().NoError(err)
	s.Len(inRegion, 1)
}
