package grant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"welfare/internal/benefits/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists benefit grants in PostgreSQL.
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

const grantColumns = `id, citizen_id, category_id, start_date, end_date, number,
	description, status, created_by, created_at, updated_at`

// currentClause matches active grants not ended before $n.
const currentClause = `status = 'active' AND (end_date IS NULL OR end_date >= `

func (s *PostgresStore) Create(ctx context.Context, g *models.Grant) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO benefit_grants (`+grantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		uuid.UUID(g.ID),
		uuid.UUID(g.CitizenID),
		uuid.UUID(g.CategoryID),
		g.StartDate,
		g.EndDate,
		g.Number,
		g.Description,
		string(g.Status),
		userArg(g.CreatedBy),
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create grant: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, g *models.Grant) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE benefit_grants
		SET category_id = $2, start_date = $3, end_date = $4, number = $5,
			description = $6, status = $7, updated_at = $8
		WHERE id = $1
	`,
		uuid.UUID(g.ID),
		uuid.UUID(g.CategoryID),
		g.StartDate,
		g.EndDate,
		g.Number,
		g.Description,
		string(g.Status),
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update grant: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update grant rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, grantID id.GrantID) (*models.Grant, error) {
	g, err := scanGrant(s.execer(ctx).QueryRowContext(ctx, `
		SELECT `+grantColumns+` FROM benefit_grants WHERE id = $1
	`, uuid.UUID(grantID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find grant by id: %w", err)
	}
	return g, nil
}

func (s *PostgresStore) ListByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error) {
	return s.query(ctx, "list grants by citizen", `
		SELECT `+grantColumns+` FROM benefit_grants
		WHERE citizen_id = $1
		ORDER BY start_date DESC
	`, uuid.UUID(citizenID))
}

func (s *PostgresStore) ListCurrentByCitizen(ctx context.Context, citizenID id.CitizenID, today time.Time) ([]*models.Grant, error) {
	return s.query(ctx, "list current grants by citizen", `
		SELECT `+grantColumns+` FROM benefit_grants
		WHERE citizen_id = $1 AND `+currentClause+`$2)
		ORDER BY start_date DESC
	`, uuid.UUID(citizenID), models.Day(today))
}

func (s *PostgresStore) ListCurrent(ctx context.Context, today time.Time, categoryID *id.CategoryID) ([]*models.Grant, error) {
	var category uuid.NullUUID
	if categoryID != nil {
		category = uuid.NullUUID{UUID: uuid.UUID(*categoryID), Valid: true}
	}
	return s.query(ctx, "list current grants", `
		SELECT `+grantColumns+` FROM benefit_grants
		WHERE `+currentClause+`$1) AND ($2::uuid IS NULL OR category_id = $2)
		ORDER BY start_date DESC
	`, models.Day(today), category)
}

func (s *PostgresStore) HasCurrentInCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID, today time.Time) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM benefit_grants
			WHERE citizen_id = $1 AND category_id = $2 AND `+currentClause+`$3)
		)
	`, uuid.UUID(citizenID), uuid.UUID(categoryID), models.Day(today)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check current grant: %w", err)
	}
	return exists, nil
}

// LockCitizenCategory serializes grant decisions for one citizen and category
// until the surrounding transaction ends. Without a transaction in ctx the
// lock is released immediately.
func (s *PostgresStore) LockCitizenCategory(ctx context.Context, citizenID id.CitizenID, categoryID id.CategoryID) error {
	key := "benefit_grant:" + citizenID.String() + ":" + categoryID.String()
	if _, err := s.execer(ctx).ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1)::bigint)`, key); err != nil {
		return fmt.Errorf("acquire grant lock: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListExpiring(ctx context.Context, from, to time.Time) ([]*models.Grant, error) {
	return s.query(ctx, "list expiring grants", `
		SELECT `+grantColumns+` FROM benefit_grants
		WHERE status = 'active' AND end_date BETWEEN $1 AND $2
		ORDER BY end_date
	`, models.Day(from), models.Day(to))
}

func (s *PostgresStore) CountActiveByCategory(ctx context.Context) (map[id.CategoryID]int, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT category_id, count(*) FROM benefit_grants
		WHERE status = 'active'
		GROUP BY category_id
	`)
	if err != nil {
		return nil, fmt.Errorf("count grants by category: %w", err)
	}
	defer rows.Close()

	out := make(map[id.CategoryID]int)
	for rows.Next() {
		var categoryID uuid.UUID
		var n int
		if err := rows.Scan(&categoryID, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out[id.CategoryID(categoryID)] = n
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountCitizensInCategory(ctx context.Context, categoryID id.CategoryID) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT count(DISTINCT citizen_id) FROM benefit_grants
		WHERE status = 'active' AND category_id = $1
	`, uuid.UUID(categoryID)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count citizens in category: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) CountBeneficiaries(ctx context.Context) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT count(DISTINCT citizen_id) FROM benefit_grants WHERE status = 'active'
	`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count beneficiaries: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) query(ctx context.Context, op, query string, args ...any) ([]*models.Grant, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*models.Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

type grantRow interface {
	Scan(dest ...any) error
}

func scanGrant(row grantRow) (*models.Grant, error) {
	var (
		g                              models.Grant
		grantID, citizenID, categoryID uuid.UUID
		endDate                        sql.NullTime
		createdBy                      uuid.NullUUID
		status                         string
	)
	err := row.Scan(&grantID, &citizenID, &categoryID, &g.StartDate, &endDate, &g.Number,
		&g.Description, &status, &createdBy, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.ID = id.GrantID(grantID)
	g.CitizenID = id.CitizenID(citizenID)
	g.CategoryID = id.CategoryID(categoryID)
	g.StartDate = models.Day(g.StartDate)
	if endDate.Valid {
		g.EndDate = models.DayPtr(&endDate.Time)
	}
	if createdBy.Valid {
		g.CreatedBy = id.UserID(createdBy.UUID)
	}
	g.Status = models.Status(status)
	return &g, nil
}

func userArg(userID id.UserID) uuid.NullUUID {
	if userID.IsNil() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(userID), Valid: true}
}
