package eventlog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	"welfare/pkg/requestcontext"
)

// Appender persists entries. Store implementations satisfy it.
type Appender interface {
	Append(ctx context.Context, entry *Entry) error
}

// Sink receives every persisted entry, for fan-out to other systems.
type Sink interface {
	Publish(ctx context.Context, entry *Entry) error
}

// Logger records events. It is append-only, and a failure to record never
// fails the operation that emitted the event.
type Logger struct {
	store   Appender
	sinks   []Sink
	logger  *slog.Logger
	metrics *metrics.Metrics

	entries chan *Entry
	wg      sync.WaitGroup
	async   bool

	// guards entries against a send after close
	mu     sync.RWMutex
	closed bool
}

// LoggerOption configures the Logger.
type LoggerOption func(*Logger)

// WithAsyncBuffer queues entries and persists them in a background goroutine.
// Entries are dropped when the buffer is full.
func WithAsyncBuffer(size int) LoggerOption {
	return func(l *Logger) {
		if size > 0 {
			l.entries = make(chan *Entry, size)
			l.async = true
		}
	}
}

func WithLogger(logger *slog.Logger) LoggerOption {
	return func(l *Logger) {
		l.logger = logger
	}
}

func WithSink(sink Sink) LoggerOption {
	return func(l *Logger) {
		if sink != nil {
			l.sinks = append(l.sinks, sink)
		}
	}
}

func WithMetrics(m *metrics.Metrics) LoggerOption {
	return func(l *Logger) {
		l.metrics = m
	}
}

func NewLogger(store Appender, opts ...LoggerOption) *Logger {
	l := &Logger{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	if l.async {
		l.wg.Add(1)
		go l.drain()
	}
	return l
}

// Log builds an entry from e and the request context and records it.
func (l *Logger) Log(ctx context.Context, e Event) {
	entry := l.entryFrom(ctx, e)

	if l.async {
		if reason := l.enqueue(entry); reason != "" {
			l.metrics.IncEventDropped()
			l.logger.WarnContext(ctx, "event log entry dropped",
				"reason", reason,
				"type", entry.Type,
				"entity_type", entry.EntityType,
			)
		}
		return
	}
	l.persist(ctx, entry)
}

// enqueue returns why entry was not queued, or "" when it was.
func (l *Logger) enqueue(entry *Entry) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return "closed"
	}
	select {
	case l.entries <- entry:
		return ""
	default:
		return "buffer full"
	}
}

// Close stops the background writer and waits for queued entries. Entries
// logged afterwards are dropped. Close is safe to call more than once.
func (l *Logger) Close() {
	if !l.async {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.entries)
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *Logger) drain() {
	defer l.wg.Done()
	for entry := range l.entries {
		l.persist(context.Background(), entry)
	}
}

func (l *Logger) persist(ctx context.Context, entry *Entry) {
	if err := l.store.Append(ctx, entry); err != nil {
		l.metrics.IncEventDropped()
		l.logger.ErrorContext(ctx, "failed to persist event log entry",
			"error", err,
			"type", entry.Type,
			"entity_type", entry.EntityType,
		)
		return
	}
	l.metrics.IncEventLogged()

	for _, sink := range l.sinks {
		if err := sink.Publish(ctx, entry); err != nil {
			l.logger.WarnContext(ctx, "failed to publish event log entry",
				"error", err,
				"type", entry.Type,
			)
		}
	}
}

func (l *Logger) entryFrom(ctx context.Context, e Event) *Entry {
	entry := &Entry{
		ID:          id.EventID(uuid.New()),
		Type:        e.Type,
		Description: e.Description,
		EntityType:  e.EntityType,
		IPAddress:   requestcontext.ClientIP(ctx),
		UserAgent:   requestcontext.UserAgent(ctx),
		CreatedAt:   requestcontext.Now(ctx).UTC(),
	}

	userID := e.UserID
	if userID.IsNil() {
		userID = requestcontext.UserID(ctx)
	}
	if !userID.IsNil() {
		entry.UserID = &userID
	}
	if e.EntityID != uuid.Nil {
		entityID := e.EntityID
		entry.EntityID = &entityID
	}
	return entry
}
