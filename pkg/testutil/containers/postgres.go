//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"welfare/internal/platform/database"
	"welfare/migrations"
	id "welfare/pkg/domain"
)

// PostgresContainer wraps a testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a new Postgres container with migrations applied.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("welfare_test"),
		postgres.WithUsername("welfare"),
		postgres.WithPassword("welfare_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	if _, err := database.Migrate(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	// The container is shared across suites through Manager; Ryuk removes it
	// when the test process exits.
	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// TruncateTables clears all data from the specified tables.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// TruncateModuleTables truncates every domain table for full isolation.
func (p *PostgresContainer) TruncateModuleTables(ctx context.Context) error {
	return p.TruncateTables(ctx,
		"event_log",
		"certificates",
		"benefit_grants",
		"benefit_categories",
		"citizens",
		"regions",
		"users",
	)
}

// Exec runs a SQL statement and returns the result.
func (p *PostgresContainer) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return p.DB.ExecContext(ctx, query, args...)
}

// QueryRow runs a SQL query expected to return a single row.
func (p *PostgresContainer) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return p.DB.QueryRowContext(ctx, query, args...)
}

// CreateTestRegion inserts a region and returns its ID.
func (p *PostgresContainer) CreateTestRegion(ctx context.Context, t testing.TB, name string) id.RegionID {
	t.Helper()
	regionID := id.RegionID(uuid.New())
	_, err := p.Exec(ctx, `
		INSERT INTO regions (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`, uuid.UUID(regionID), name)
	if err != nil {
		t.Fatalf("CreateTestRegion: %v", err)
	}
	return regionID
}

// CreateTestCitizen inserts an active citizen with the given canonical identifier.
func (p *PostgresContainer) CreateTestCitizen(ctx context.Context, t testing.TB, identifier string) id.CitizenID {
	t.Helper()
	citizenID := id.CitizenID(uuid.New())
	_, err := p.Exec(ctx, `
		INSERT INTO citizens (id, last_name, first_name, birth_date, identifier, status, created_at, updated_at)
		VALUES ($1, 'Ivanova', 'Anna', '1980-05-17', $2, 'active', NOW(), NOW())
	`, uuid.UUID(citizenID), identifier)
	if err != nil {
		t.Fatalf("CreateTestCitizen: %v", err)
	}
	return citizenID
}

// CreateTestCategory inserts an active benefit category.
func (p *PostgresContainer) CreateTestCategory(ctx context.Context, t testing.TB, name string) id.CategoryID {
	t.Helper()
	categoryID := id.CategoryID(uuid.New())
	_, err := p.Exec(ctx, `
		INSERT INTO benefit_categories (id, name, status, created_at, updated_at)
		VALUES ($1, $2, 'active', NOW(), NOW())
	`, uuid.UUID(categoryID), name)
	if err != nil {
		t.Fatalf("CreateTestCategory: %v", err)
	}
	return categoryID
}
