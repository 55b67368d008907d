//go:build integration

package eventlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"welfare/internal/eventlog"
	id "welfare/pkg/domain"
	"welfare/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *eventlog.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = eventlog.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "event_log"))
}

func (s *PostgresStoreSuite) TestAppendAndFilter() {
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	userID := id.UserID(uuid.New())
	entityID := uuid.New()

	s.Require().NoError(s.store.Append(ctx, &eventlog.Entry{
		ID:          id.EventID(uuid.New()),
		UserID:      &userID,
		Type:        eventlog.TypeCitizenCreated,
		Description: "citizen registered",
		EntityType:  eventlog.EntityCitizen,
		EntityID:    &entityID,
		IPAddress:   "10.0.0.1",
		CreatedAt:   base,
	}))
	s.Require().NoError(s.store.Append(ctx, &eventlog.Entry{
		ID:        id.EventID(uuid.New()),
		Type:      eventlog.TypeLoginFailed,
		CreatedAt: base.Add(time.Hour),
	}))

	s.Run("newest first with nullable columns", func() {
		all, err := s.store.Filter(ctx, eventlog.Filter{})
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal(eventlog.TypeLoginFailed, all[0].Type)
		s.Nil(all[0].UserID)
		s.Nil(all[0].EntityID)
		s.Require().NotNil(all[1].EntityID)
		s.Equal(entityID, *all[1].EntityID)
	})

	s.Run("user and range filters", func() {
		from := base.Add(-time.Minute)
		to := base.Add(time.Minute)
		got, err := s.store.Filter(ctx, eventlog.Filter{UserID: &userID, From: &from, To: &to})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("10.0.0.1", got[0].IPAddress)
	})

	s.Run("type and limit", func() {
		got, err := s.store.Filter(ctx, eventlog.Filter{Type: eventlog.TypeLoginFailed, Limit: 5})
		s.Require().NoError(err)
		s.Len(got, 1)

		got, err = s.store.Filter(ctx, eventlog.Filter{Limit: 1})
		s.Require().NoError(err)
		s.Len(got, 1)
	})
}
