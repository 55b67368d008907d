//go:build integration

package containers

import (
	"context"
	"errors"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v24.2.4"

// KafkaContainer is a single-node Redpanda broker.
type KafkaContainer struct {
	Container *redpanda.Container
	Brokers   string
}

func NewKafkaContainer(t *testing.T) *KafkaContainer {
	t.Helper()
	ctx := context.Background()

	c, err := redpanda.Run(ctx, redpandaImage, redpanda.WithAutoCreateTopics())
	if err != nil {
		t.Fatalf("start redpanda: %v", err)
	}
	seed, err := c.KafkaSeedBroker(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		t.Fatalf("redpanda seed broker: %v", err)
	}
	return &KafkaContainer{Container: c, Brokers: seed}
}

// EnsureTopic creates topic with a replication factor of one. A topic left
// over from an earlier suite is reused.
func (k *KafkaContainer) EnsureTopic(ctx context.Context, topic string, partitions int32) error {
	cl, err := kgo.NewClient(kgo.SeedBrokers(k.Brokers))
	if err != nil {
		return err
	}
	defer cl.Close()

	created, err := kadm.NewClient(cl).CreateTopics(ctx, partitions, 1, nil, topic)
	if err != nil {
		return err
	}
	if res, ok := created[topic]; ok && res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
		return res.Err
	}
	return nil
}

// Reader returns a client reading topic from its earliest offset. It is
// closed when the test ends.
func (k *KafkaContainer) Reader(t *testing.T, topic string) *kgo.Client {
	t.Helper()
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(k.Brokers),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		t.Fatalf("kafka reader: %v", err)
	}
	t.Cleanup(cl.Close)
	return cl
}

// Await polls cl until a record satisfies match. It returns nil once ctx
// is done.
func Await(ctx context.Context, cl *kgo.Client, match func(*kgo.Record) bool) *kgo.Record {
	for ctx.Err() == nil {
		fetches := cl.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		iter := fetches.RecordIter()
		for !iter.Done() {
			if rec := iter.Next(); match(rec) {
				return rec
			}
		}
	}
	return nil
}
