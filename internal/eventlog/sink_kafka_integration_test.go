//go:build integration

package eventlog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"welfare/internal/eventlog"
	"welfare/internal/platform/kafka/producer"
	id "welfare/pkg/domain"
	"welfare/pkg/testutil/containers"
)

const integrationTopic = "welfare.events.it"

// KafkaSinkSuite publishes through a real producer against Redpanda.
//
// Justification: the mock-based tests pin the message shape; this checks
// that the record actually lands on the topic with its key and header.
type KafkaSinkSuite struct {
	suite.Suite
	kafka    *containers.KafkaContainer
	producer *producer.Producer
}

func TestKafkaSinkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSinkSuite))
}

func (s *KafkaSinkSuite) SetupSuite() {
	s.kafka = containers.GetManager().GetKafka(s.T())
	s.Require().NoError(s.kafka.EnsureTopic(context.Background(), integrationTopic, 1))

	p, err := producer.New(producer.Config{Brokers: s.kafka.Brokers}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.producer = p
}

func (s *KafkaSinkSuite) TearDownSuite() {
	if s.producer != nil {
		s.NoError(s.producer.Close(5 * time.Second))
	}
}

func (s *KafkaSinkSuite) TestPublishedEntryIsReadable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entityID := uuid.New()
	entry := &eventlog.Entry{
		ID:          id.EventID(uuid.New()),
		Type:        eventlog.TypeCitizenCreated,
		Description: "citizen registered",
		EntityType:  eventlog.EntityCitizen,
		EntityID:    &entityID,
		CreatedAt:   time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(eventlog.NewKafkaSink(s.producer, integrationTopic).Publish(ctx, entry))

	key := entry.ID.String()
	rec := containers.Await(ctx, s.kafka.Reader(s.T(), integrationTopic), func(r *kgo.Record) bool {
		return string(r.Key) == key
	})
	s.Require().NotNil(rec, "entry never reached the topic")

	decoded, err := eventlog.Unmarshal(rec.Value)
	s.Require().NoError(err)
	s.Equal(entry.ID, decoded.ID)
	s.Equal(entityID, *decoded.EntityID)

	var eventType string
	for _, h := range rec.Headers {
		if h.Key == "event_type" {
			eventType = string(h.Value)
		}
	}
	s.Equal(string(eventlog.TypeCitizenCreated), eventType)
}
