package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "welfare/pkg/domain-errors"
)

func TestUserStatusTransitions(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	u := &User{Username: "Operator1", Status: StatusActive}

	require.NoError(t, u.Deactivate(now))
	assert.False(t, u.IsActive())
	assert.Equal(t, now, u.UpdatedAt)

	err := u.Deactivate(now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	require.NoError(t, u.Reactivate(now))
	assert.True(t, dErrors.HasCode(u.Reactivate(now), dErrors.CodeInvariantViolation))
}

func TestUsernameKeyIgnoresCase(t *testing.T) {
	a := &User{Username: " Оператор "}
	b := &User{Username: "оПЕРАТОР"}
	assert.Equal(t, a.UsernameKey(), b.UsernameKey())
}

func TestFullNameSkipsEmptyParts(t *testing.T) {
	u := &User{LastName: "Volkova", FirstName: "Irina"}
	assert.Equal(t, "Volkova Irina", u.FullName())
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}
