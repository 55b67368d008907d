package eventlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"welfare/internal/platform/kafka/consumer"
	id "welfare/pkg/domain"
)

type failingAppender struct{}

func (failingAppender) Append(context.Context, *Entry) error {
	return errors.New("connection refused")
}

// ReplicatorSuite covers the consumer side of the event topic.
//
// Justification: a poison message must be committed past while a store
// failure must block the commit, and redelivery must not duplicate entries.
type ReplicatorSuite struct {
	suite.Suite
	store      *InMemoryStore
	replicator *Replicator
}

func TestReplicatorSuite(t *testing.T) {
	suite.Run(t, new(ReplicatorSuite))
}

func (s *ReplicatorSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.replicator = NewReplicator(s.store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ReplicatorSuite) message(e *Entry) *consumer.Message {
	body, err := Marshal(e)
	s.Require().NoError(err)
	return &consumer.Message{Topic: "welfare.events", Key: []byte(e.ID.String()), Value: body}
}

func (s *ReplicatorSuite) TestStoresDecodedEntry() {
	userID := id.UserID(uuid.New())
	e := &Entry{
		ID:          id.EventID(uuid.New()),
		UserID:      &userID,
		Type:        TypeCitizenCreated,
		Description: "Citizen Ivanov registered",
		CreatedAt:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.replicator.Handle(context.Background(), s.message(e)))

	got, err := s.store.Filter(context.Background(), Filter{})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(e.ID, got[0].ID)
	s.Equal(userID, *got[0].UserID)
	s.True(e.CreatedAt.Equal(got[0].CreatedAt))
}

func (s *ReplicatorSuite) TestRedeliveryIsIdempotent() {
	msg := s.message(&Entry{ID: id.EventID(uuid.New()), Type: TypeLogin, CreatedAt: time.Now()})

	s.Require().NoError(s.replicator.Handle(context.Background(), msg))
	s.Require().NoError(s.replicator.Handle(context.Background(), msg))

	got, err := s.store.Filter(context.Background(), Filter{})
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *ReplicatorSuite) TestMalformedMessageIsSkipped() {
	s.Run("invalid json", func() {
		err := s.replicator.Handle(context.Background(), &consumer.Message{Value: []byte("{not json")})
		s.NoError(err)
	})

	s.Run("invalid id", func() {
		err := s.replicator.Handle(context.Background(), &consumer.Message{
			Value: []byte(`{"id":"x","type":"login","created_at":"2025-06-10T09:00:00Z"}`),
		})
		s.NoError(err)
	})

	got, err := s.store.Filter(context.Background(), Filter{})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ReplicatorSuite) TestStoreFailureBlocksCommit() {
	r := NewReplicator(failingAppender{}, nil)
	err := r.Handle(context.Background(), s.message(&Entry{ID: id.EventID(uuid.New()), Type: TypeLogin, CreatedAt: time.Now()}))
	s.Error(err)
}
