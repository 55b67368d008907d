// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "welfare/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a CitizenID where a CategoryID is expected.
type (
	CitizenID     uuid.UUID
	RegionID      uuid.UUID
	CategoryID    uuid.UUID
	GrantID       uuid.UUID
	CertificateID uuid.UUID
	UserID        uuid.UUID
	SessionID     uuid.UUID
	EventID       uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseCitizenID(s string) (CitizenID, error) {
	id, err := parseUUID(s, "citizen ID")
	return CitizenID(id), err
}

func ParseRegionID(s string) (RegionID, error) {
	id, err := parseUUID(s, "region ID")
	return RegionID(id), err
}

func ParseCategoryID(s string) (CategoryID, error) {
	id, err := parseUUID(s, "category ID")
	return CategoryID(id), err
}

func ParseGrantID(s string) (GrantID, error) {
	id, err := parseUUID(s, "grant ID")
	return GrantID(id), err
}

func ParseCertificateID(s string) (CertificateID, error) {
	id, err := parseUUID(s, "certificate ID")
	return CertificateID(id), err
}

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseSessionID(s string) (SessionID, error) {
	id, err := parseUUID(s, "session ID")
	return SessionID(id), err
}

func ParseEventID(s string) (EventID, error) {
	id, err := parseUUID(s, "event ID")
	return EventID(id), err
}

// String methods - for logging and debugging.

func (id CitizenID) String() string     { return uuid.UUID(id).String() }
func (id RegionID) String() string      { return uuid.UUID(id).String() }
func (id CategoryID) String() string    { return uuid.UUID(id).String() }
func (id GrantID) String() string       { return uuid.UUID(id).String() }
func (id CertificateID) String() string { return uuid.UUID(id).String() }
func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id SessionID) String() string     { return uuid.UUID(id).String() }
func (id EventID) String() string       { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id CitizenID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id RegionID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id GrantID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CertificateID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; services reject them with IsNil so that store
// lookups keep returning consistent "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
