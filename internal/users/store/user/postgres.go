package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"welfare/internal/platform/database"
	"welfare/internal/sentinel"
	"welfare/internal/users/models"
	id "welfare/pkg/domain"
	txcontext "welfare/pkg/platform/tx"
)

const userColumns = `id, username, password_hash, last_name, first_name, middle_name,
	email, phone, role, status, last_login_at, created_at, updated_at`

// PostgresStore persists users in PostgreSQL. username_key carries the folded
// username under a unique index.
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

func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO users (id, username, username_key, password_hash, last_name, first_name,
			middle_name, email, phone, role, status, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, uuid.UUID(u.ID), u.Username, u.UsernameKey(), u.PasswordHash, u.LastName, u.FirstName,
		u.MiddleName, u.Email, u.Phone, string(u.Role), string(u.Status), u.LastLoginAt,
		u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("username must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, u *models.User) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE users SET username = $2, username_key = $3, password_hash = $4, last_name = $5,
			first_name = $6, middle_name = $7, email = $8, phone = $9, role = $10, status = $11,
			last_login_at = $12, updated_at = $13
		WHERE id = $1
	`, uuid.UUID(u.ID), u.Username, u.UsernameKey(), u.PasswordHash, u.LastName, u.FirstName,
		u.MiddleName, u.Email, u.Phone, string(u.Role), string(u.Status), u.LastLoginAt, u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("username must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	return s.findOne(ctx, "find user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, uuid.UUID(userID))
}

func (s *PostgresStore) FindByUsernameKey(ctx context.Context, key string) (*models.User, error) {
	return s.findOne(ctx, "find user by username", `SELECT `+userColumns+` FROM users WHERE username_key = $1`, key)
}

func (s *PostgresStore) UsernameExists(ctx context.Context, key string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username_key = $1 AND id <> $2)
	`, key, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) List(ctx context.Context, activeOnly bool) ([]*models.User, error) {
	return s.query(ctx, "list users", `
		SELECT `+userColumns+` FROM users
		WHERE NOT $1 OR status = 'active'
		ORDER BY last_name, first_name
	`, activeOnly)
}

func (s *PostgresStore) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	return s.query(ctx, "list users by role", `
		SELECT `+userColumns+` FROM users
		WHERE role = $1 AND status = 'active'
		ORDER BY last_name, first_name
	`, string(role))
}

func (s *PostgresStore) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE role = $1 AND status = 'active'
	`, string(role)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) findOne(ctx context.Context, action, query string, arg any) (*models.User, error) {
	u, err := scanUser(s.execer(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return u, nil
}

func (s *PostgresStore) query(ctx context.Context, action, query string, args ...any) ([]*models.User, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (*models.User, error) {
	var u models.User
	var userID uuid.UUID
	var role, status string
	var lastLogin sql.NullTime
	if err := row.Scan(&userID, &u.Username, &u.PasswordHash, &u.LastName, &u.FirstName,
		&u.MiddleName, &u.Email, &u.Phone, &role, &status, &lastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.ID = id.UserID(userID)
	u.Role = models.Role(role)
	u.Status = models.Status(status)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return &u, nil
}
