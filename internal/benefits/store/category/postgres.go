package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"welfare/internal/benefits/models"
	"welfare/internal/platform/database"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

// PostgresStore persists benefit categories in PostgreSQL.
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

const categoryColumns = `id, name, description, legal_basis, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, c *models.Category) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO benefit_categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(c.ID), c.Name, c.Description, c.LegalBasis, string(c.Status), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("category name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Category) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE benefit_categories
		SET name = $2, description = $3, legal_basis = $4, status = $5, updated_at = $6
		WHERE id = $1
	`, uuid.UUID(c.ID), c.Name, c.Description, c.LegalBasis, string(c.Status), c.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("category name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("update category: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	c, err := scanCategory(s.execer(ctx).QueryRowContext(ctx, `
		SELECT `+categoryColumns+` FROM benefit_categories WHERE id = $1
	`, uuid.UUID(categoryID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+categoryColumns+` FROM benefit_categories
		WHERE NOT $1 OR status = 'active'
		ORDER BY name
	`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type categoryRow interface {
	Scan(dest ...any) error
}

func scanCategory(row categoryRow) (*models.Category, error) {
	var c models.Category
	var categoryID uuid.UUID
	var status string
	if err := row.Scan(&categoryID, &c.Name, &c.Description, &c.LegalBasis, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ID = id.CategoryID(categoryID)
	c.Status = models.Status(status)
	return &c, nil
}
