package models

import (
	"strings"
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	pstrings "welfare/pkg/platform/strings"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 4
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleCitizen  Role = "citizen"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleOperator, RoleCitizen}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleCitizen:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is a staff or citizen account. PasswordHash is a bcrypt hash, or a
// legacy SHA-256 digest until the first successful login replaces it.
type User struct {
	ID           id.UserID
	Username     string
	PasswordHash string
	LastName     string
	FirstName    string
	MiddleName   string
	Email        string
	Phone        string
	Role         Role
	Status       Status
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UsernameKey is the case-folded username used for uniqueness and login.
func (u *User) UsernameKey() string {
	return pstrings.FoldKey(u.Username)
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.LastName, u.FirstName, u.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (u *User) Deactivate(now time.Time) error {
	if !u.IsActive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "user is already inactive")
	}
	u.Status = StatusInactive
	u.UpdatedAt = now
	return nil
}

func (u *User) Reactivate(now time.Time) error {
	if u.IsActive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "user is already active")
	}
	u.Status = StatusActive
	u.UpdatedAt = now
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin(now time.Time) {
	u.LastLoginAt = &now
}

// Session is an issued login token. The session ID doubles as the token ID
// checked against the revocation list.
type Session struct {
	ID        id.SessionID
	UserID    id.UserID
	Role      Role
	Token     string
	ExpiresAt time.Time
}
