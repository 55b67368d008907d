package eventlog

import (
	"context"
	"fmt"

	"welfare/internal/platform/kafka/producer"
)

// Producer is the subset of the Kafka producer the sink needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaSink publishes entries to a topic, keyed by entry ID so consumers can
// deduplicate.
type KafkaSink struct {
	producer Producer
	topic    string
}

func NewKafkaSink(p Producer, topic string) *KafkaSink {
	return &KafkaSink{producer: p, topic: topic}
}

func (s *KafkaSink) Publish(ctx context.Context, entry *Entry) error {
	payload, err := Marshal(entry)
	if err != nil {
		return err
	}
	msg := &producer.Message{
		Topic: s.topic,
		Key:   []byte(entry.ID.String()),
		Value: payload,
		Headers: map[string]string{
			"event_type": string(entry.Type),
		},
	}
	if err := s.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", entry.ID, err)
	}
	return nil
}
