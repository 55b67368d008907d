package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutURLIsDisabled(t *testing.T) {
	pool, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.Nil(t, pool)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
}

func TestNilPoolIsInert(t *testing.T) {
	var pool *Pool
	assert.ErrorIs(t, pool.Ping(context.Background()), ErrNotConfigured)
	assert.NoError(t, pool.Close())
	assert.Zero(t, pool.Stats().OpenConnections)
}
