package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"welfare/internal/eventlog"
	"welfare/internal/platform/database"
	"welfare/internal/platform/kafka/consumer"
	"welfare/internal/platform/logger"
)

const defaultEventsTopic = "welfare.events"

type streamOptions struct {
	brokers   string
	topic     string
	group     string
	fromStart bool
	logLevel  string
}

func (o *streamOptions) bind(cmd *cobra.Command, defaultGroup string) {
	topic := os.Getenv("KAFKA_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultEventsTopic
	}
	cmd.Flags().StringVar(&o.brokers, "brokers", os.Getenv("KAFKA_BROKERS"), "comma-separated Kafka seed brokers")
	cmd.Flags().StringVar(&o.topic, "topic", topic, "event log topic")
	cmd.Flags().StringVar(&o.group, "group", defaultGroup, "consumer group ID")
	cmd.Flags().BoolVar(&o.fromStart, "from-start", false, "read a new group from the earliest offset")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "warn", "diagnostic log level, written to stderr")
}

// run consumes the topic until interrupted.
func (o *streamOptions) run(cmd *cobra.Command, handler func(log *slog.Logger) consumer.Handler) error {
	log := logger.NewWithWriter(cmd.ErrOrStderr(), o.logLevel)
	c, err := consumer.New(consumer.Config{
		Brokers:   o.brokers,
		GroupID:   o.group,
		Topics:    []string{o.topic},
		FromStart: o.fromStart,
	}, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "create consumer", err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx, handler(log)); err != nil {
		return WrapExitError(ExitFailure, "consume events", err)
	}
	return nil
}

func NewEventsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow and replicate the Kafka event log stream",
	}
	cmd.AddCommand(newEventsTailCommand(opts))
	cmd.AddCommand(newEventsReplicateCommand())
	return cmd
}

func newEventsTailCommand(opts *RootOptions) *cobra.Command {
	sopts := &streamOptions{}
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print event log entries as they are published",
		Long: `Joins a consumer group on the event topic and prints one line per entry.
With --format json each line is the published JSON document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sopts.run(cmd, func(log *slog.Logger) consumer.Handler {
				return tailHandler(cmd.OutOrStdout(), opts.Format, log)
			})
		},
	}
	sopts.bind(cmd, "welfarectl-tail")
	return cmd
}

func newEventsReplicateCommand() *cobra.Command {
	sopts := &streamOptions{}
	var databaseURL string
	cmd := &cobra.Command{
		Use:   "replicate",
		Short: "Copy the event topic into a PostgreSQL event log",
		Long: `Consumes the event topic and appends every entry to the event_log table
of the target database. Entries already present are skipped, so the topic
can be replayed from the start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return NewExitError(ExitCommandError, "--database-url or DATABASE_URL is required")
			}
			pool, err := database.New(cmd.Context(), database.Config{URL: databaseURL})
			if err != nil {
				return WrapExitError(ExitCommandError, "connect to database", err)
			}
			defer pool.Close() //nolint:errcheck

			store := eventlog.NewPostgresStore(pool.DB())
			return sopts.run(cmd, func(log *slog.Logger) consumer.Handler {
				return eventlog.NewReplicator(store, log)
			})
		},
	}
	sopts.bind(cmd, "welfarectl-replicate")
	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	return cmd
}

// tailHandler prints each decodable entry. Records that fail to decode are
// reported on the logger and skipped.
func tailHandler(w io.Writer, format string, log *slog.Logger) consumer.Handler {
	return consumer.HandlerFunc(func(ctx context.Context, msg *consumer.Message) error {
		entry, err := eventlog.Unmarshal(msg.Value)
		if err != nil {
			log.WarnContext(ctx, "skipping undecodable event", "partition", msg.Partition, "offset", msg.Offset, "error", err)
			return nil
		}
		if format == FormatJSON {
			data, err := eventlog.Marshal(entry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\n", data)
			return err
		}
		_, err = fmt.Fprintln(w, formatEntry(entry))
		return err
	})
}

func formatEntry(e *eventlog.Entry) string {
	user := "-"
	if e.UserID != nil {
		user = e.UserID.String()
	}
	entity := "-"
	if e.EntityType != "" && e.EntityID != nil {
		entity = fmt.Sprintf("%s/%s", e.EntityType, e.EntityID)
	}
	return fmt.Sprintf("%s  %-22s user=%s entity=%s  %s",
		e.CreatedAt.UTC().Format(time.RFC3339), e.Type, user, entity, e.Description)
}
