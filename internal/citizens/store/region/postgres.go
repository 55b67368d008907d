package region

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"welfare/internal/citizens/models"
	"welfare/internal/platform/database"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists regions in PostgreSQL.
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

func (s *PostgresStore) Create(ctx context.Context, r *models.Region) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO regions (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(r.ID), r.Name, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("region name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create region: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, r *models.Region) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE regions SET name = $2, updated_at = $3 WHERE id = $1
	`, uuid.UUID(r.ID), r.Name, r.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("region name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("update region: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update region rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, regionID id.RegionID) (*models.Region, error) {
	r, err := scanRegion(s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM regions WHERE id = $1
	`, uuid.UUID(regionID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find region by id: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Region, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM regions ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var out []*models.Region
	for rows.Next() {
		r, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type regionRow interface {
	Scan(dest ...any) error
}

func scanRegion(row regionRow) (*models.Region, error) {
	var r models.Region
	var regionID uuid.UUID
	if err := row.Scan(&regionID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.RegionID(regionID)
	return &r, nil
}
