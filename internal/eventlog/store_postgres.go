package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists entries in the event_log table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Append is idempotent on the entry ID.
func (s *PostgresStore) Append(ctx context.Context, entry *Entry) error {
	var userID, entityID *uuid.UUID
	if entry.UserID != nil {
		u := uuid.UUID(*entry.UserID)
		userID = &u
	}
	if entry.EntityID != nil {
		entityID = entry.EntityID
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO event_log (id, user_id, type, description, entity_type, entity_id, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`,
		uuid.UUID(entry.ID),
		userID,
		string(entry.Type),
		entry.Description,
		string(entry.EntityType),
		entityID,
		entry.IPAddress,
		entry.UserAgent,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (s *PostgresStore) Filter(ctx context.Context, f Filter) ([]*Entry, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.UserID != nil {
		add("user_id = $%d", uuid.UUID(*f.UserID))
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at <= $%d", *f.To)
	}
	if f.Type != "" {
		add("type = $%d", string(f.Type))
	}

	query := `SELECT id, user_id, type, description, entity_type, entity_id, ip_address, user_agent, created_at FROM event_log`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter events: %w", err)
	}
	defer rows.Close()

	out := make([]*Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var (
		e                Entry
		entryID          uuid.UUID
		userID, entityID uuid.NullUUID
		typ, entityType  string
	)
	if err := rows.Scan(&entryID, &userID, &typ, &e.Description, &entityType, &entityID, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ID = id.EventID(entryID)
	e.Type = Type(typ)
	e.EntityType = EntityType(entityType)
	if userID.Valid {
		u := id.UserID(userID.UUID)
		e.UserID = &u
	}
	if entityID.Valid {
		v := entityID.UUID
		e.EntityID = &v
	}
	return &e, nil
}
