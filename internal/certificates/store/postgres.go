package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"welfare/internal/certificates/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists certificates in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const certificateColumns = `id, citizen_id, type, issue_date, notes, issued_by, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, c *models.Certificate) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO certificates (`+certificateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		uuid.UUID(c.ID),
		uuid.UUID(c.CitizenID),
		string(c.Type),
		c.IssueDate,
		c.Notes,
		userArg(c.IssuedBy),
		string(c.Status),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Certificate) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE certificates
		SET citizen_id = $2, type = $3, issue_date = $4, notes = $5, status = $6, updated_at = $7
		WHERE id = $1
	`, uuid.UUID(c.ID), uuid.UUID(c.CitizenID), string(c.Type), c.IssueDate, c.Notes, string(c.Status), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update certificate: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update certificate rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error) {
	c, err := scanCertificate(s.execer(ctx).QueryRowContext(ctx, `
		SELECT `+certificateColumns+` FROM certificates WHERE id = $1
	`, uuid.UUID(certificateID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find certificate by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context, f models.Filter) ([]*models.Certificate, error) {
	where, args := filterClause(f)
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+certificateColumns+` FROM certificates`+where+`
		ORDER BY issue_date DESC, created_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var out []*models.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountByType(ctx context.Context) (map[models.Type]int, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT type, count(*) FROM certificates WHERE status <> 'annulled' GROUP BY type
	`)
	if err != nil {
		return nil, fmt.Errorf("count certificates by type: %w", err)
	}
	defer rows.Close()

	out := make(map[models.Type]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		out[models.Type(typ)] = n
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountInRange(ctx context.Context, from, to time.Time) (int, error) {
	where, args := filterClause(models.Filter{From: &from, To: &to})
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT count(*) FROM certificates`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count certificates in range: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	where, args := filterClause(models.Filter{})
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT count(*) FROM certificates`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count certificates: %w", err)
	}
	return n, nil
}

// filterClause renders f as a WHERE clause with positional arguments.
func filterClause(f models.Filter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !f.IncludeAnnulled {
		conds = append(conds, "status <> 'annulled'")
	}
	if f.Type != "" {
		add("type = $%d", string(f.Type))
	}
	if f.From != nil {
		add("issue_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("issue_date <= $%d", *f.To)
	}
	if f.CitizenIDs != nil {
		ids := make([]string, len(f.CitizenIDs))
		for i, citizenID := range f.CitizenIDs {
			ids[i] = citizenID.String()
		}
		add("citizen_id = ANY($%d::uuid[])", pq.Array(ids))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type certificateRow interface {
	Scan(dest ...any) error
}

func scanCertificate(row certificateRow) (*models.Certificate, error) {
	var (
		c                      models.Certificate
		certificateID, citizen uuid.UUID
		issuedBy               uuid.NullUUID
		typ, status            string
	)
	if err := row.Scan(&certificateID, &citizen, &typ, &c.IssueDate, &c.Notes, &issuedBy, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ID = id.CertificateID(certificateID)
	c.CitizenID = id.CitizenID(citizen)
	c.Type = models.Type(typ)
	c.IssueDate = c.IssueDate.UTC()
	if issuedBy.Valid {
		c.IssuedBy = id.UserID(issuedBy.UUID)
	}
	c.Status = models.Status(status)
	return &c, nil
}

func userArg(userID id.UserID) uuid.NullUUID {
	if userID.IsNil() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(userID), Valid: true}
}
