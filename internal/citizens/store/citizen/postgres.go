package citizen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"welfare/internal/citizens/models"
	"welfare/internal/platform/database"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists citizens in PostgreSQL.
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

const citizenColumns = `id, last_name, first_name, middle_name, birth_date, identifier,
	phone, email, address, region_id, status, created_at, updated_at`

const nameOrder = ` ORDER BY last_name, first_name, middle_name`

func (s *PostgresStore) Create(ctx context.Context, c *models.Citizen) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO citizens (`+citizenColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		uuid.UUID(c.ID),
		c.LastName,
		c.FirstName,
		c.MiddleName,
		c.BirthDate,
		c.Identifier,
		c.Phone,
		c.Email,
		c.Address,
		regionArg(c.RegionID),
		string(c.Status),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("identifier must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create citizen: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Citizen) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE citizens
		SET last_name = $2, first_name = $3, middle_name = $4, birth_date = $5,
			identifier = $6, phone = $7, email = $8, address = $9, region_id = $10,
			status = $11, updated_at = $12
		WHERE id = $1
	`,
		uuid.UUID(c.ID),
		c.LastName,
		c.FirstName,
		c.MiddleName,
		c.BirthDate,
		c.Identifier,
		c.Phone,
		c.Email,
		c.Address,
		regionArg(c.RegionID),
		string(c.Status),
		c.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("identifier must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("update citizen: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update citizen rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error) {
	return s.findOne(ctx, "find citizen by id",
		`SELECT `+citizenColumns+` FROM citizens WHERE id = $1`, uuid.UUID(citizenID))
}

func (s *PostgresStore) FindByIdentifier(ctx context.Context, identifier string) (*models.Citizen, error) {
	return s.findOne(ctx, "find citizen by identifier",
		`SELECT `+citizenColumns+` FROM citizens WHERE identifier = $1`, identifier)
}

// FindByIDs loads many citizens in one round trip. Unknown IDs are skipped.
func (s *PostgresStore) FindByIDs(ctx context.Context, ids []id.CitizenID) ([]*models.Citizen, error) {
	if len(ids) == 0 {
		return []*models.Citizen{}, nil
	}
	raw := make([]string, len(ids))
	for i, citizenID := range ids {
		raw[i] = citizenID.String()
	}
	return s.findMany(ctx, "find citizens by ids",
		`SELECT `+citizenColumns+` FROM citizens WHERE id = ANY($1::uuid[])`+nameOrder, pq.Array(raw))
}

func (s *PostgresStore) IdentifierExists(ctx context.Context, identifier string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM citizens WHERE identifier = $1 AND id <> $2)
	`, identifier, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check identifier: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) List(ctx context.Context, activeOnly bool) ([]*models.Citizen, error) {
	query := `SELECT ` + citizenColumns + ` FROM citizens`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	return s.findMany(ctx, "list citizens", query+nameOrder)
}

func (s *PostgresStore) SearchByName(ctx context.Context, text string) ([]*models.Citizen, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.List(ctx, true)
	}
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	return s.findMany(ctx, "search citizens", `
		SELECT `+citizenColumns+` FROM citizens
		WHERE status = 'active'
			AND (lower(last_name) LIKE $1 OR lower(first_name) LIKE $1 OR lower(middle_name) LIKE $1)
	`+nameOrder, pattern)
}

func (s *PostgresStore) ListByRegion(ctx context.Context, regionID id.RegionID) ([]*models.Citizen, error) {
	return s.findMany(ctx, "list citizens by region", `
		SELECT `+citizenColumns+` FROM citizens
		WHERE status = 'active' AND region_id = $1
	`+nameOrder, uuid.UUID(regionID))
}

func (s *PostgresStore) CountActiveByRegion(ctx context.Context) (map[id.RegionID]int, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT region_id, COUNT(*) FROM citizens
		WHERE status = 'active' AND region_id IS NOT NULL
		GROUP BY region_id
	`)
	if err != nil {
		return nil, fmt.Errorf("count citizens by region: %w", err)
	}
	defer rows.Close()

	counts := make(map[id.RegionID]int)
	for rows.Next() {
		var regionID uuid.UUID
		var n int
		if err := rows.Scan(&regionID, &n); err != nil {
			return nil, fmt.Errorf("scan region count: %w", err)
		}
		counts[id.RegionID(regionID)] = n
	}
	return counts, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM citizens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count citizens: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) findOne(ctx context.Context, op, query string, args ...any) (*models.Citizen, error) {
	c, err := scanCitizen(s.execer(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *PostgresStore) findMany(ctx context.Context, op, query string, args ...any) ([]*models.Citizen, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*models.Citizen, 0)
	for rows.Next() {
		c, err := scanCitizen(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

type citizenRow interface {
	Scan(dest ...any) error
}

func scanCitizen(row citizenRow) (*models.Citizen, error) {
	var c models.Citizen
	var citizenID uuid.UUID
	var regionID uuid.NullUUID
	var status string
	if err := row.Scan(
		&citizenID,
		&c.LastName,
		&c.FirstName,
		&c.MiddleName,
		&c.BirthDate,
		&c.Identifier,
		&c.Phone,
		&c.Email,
		&c.Address,
		&regionID,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.ID = id.CitizenID(citizenID)
	if regionID.Valid {
		r := id.RegionID(regionID.UUID)
		c.RegionID = &r
	}
	c.Status = models.Status(status)
	return &c, nil
}

func regionArg(regionID *id.RegionID) any {
	if regionID == nil {
		return nil
	}
	return uuid.UUID(*regionID)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
