package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"welfare/internal/platform/kafka/consumer"
)

// Replicator copies entries consumed from the event topic into a store, for
// example an archive database. It implements consumer.Handler.
type Replicator struct {
	store  Appender
	logger *slog.Logger
}

func NewReplicator(store Appender, logger *slog.Logger) *Replicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Replicator{store: store, logger: logger}
}

// Handle stores one published entry. Undecodable messages are logged and
// skipped so they do not block the partition; store failures are returned
// so the record is redelivered.
func (r *Replicator) Handle(ctx context.Context, msg *consumer.Message) error {
	entry, err := Unmarshal(msg.Value)
	if err != nil {
		r.logger.ErrorContext(ctx, "skipping undecodable event",
			"key", string(msg.Key),
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}

	if err := r.store.Append(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to replicate event",
			"event_id", entry.ID,
			"type", entry.Type,
			"error", err,
		)
		return fmt.Errorf("replicate event %s: %w", entry.ID, err)
	}

	r.logger.DebugContext(ctx, "replicated event", "event_id", entry.ID, "type", entry.Type)
	return nil
}
