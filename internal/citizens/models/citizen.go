package models

import (
	"strings"
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/validation"
)

// Citizen is a person registered for welfare benefits. Identifier holds the
// canonical 11 digits; Phone holds canonical digits when the input could be
// normalized and the trimmed input otherwise.
type Citizen struct {
	ID         id.CitizenID
	LastName   string
	FirstName  string
	MiddleName string
	BirthDate  time.Time
	Identifier string
	Phone      string
	Email      string
	Address    string
	RegionID   *id.RegionID
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *Citizen) IsActive() bool {
	return c.Status == StatusActive
}

// FullName joins the name parts in registry order, skipping an empty
// middle name.
func (c *Citizen) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.LastName, c.FirstName, c.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (c *Citizen) FormattedIdentifier() string {
	return validation.FormatIdentifier(c.Identifier)
}

func (c *Citizen) FormattedPhone() string {
	if c.Phone == "" {
		return ""
	}
	return validation.FormatPhone(c.Phone)
}

// MatchesName reports whether text occurs in any name part, ignoring case.
func (c *Citizen) MatchesName(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	for _, p := range []string{c.LastName, c.FirstName, c.MiddleName} {
		if strings.Contains(strings.ToLower(p), text) {
			return true
		}
	}
	return false
}

// Deactivate marks the citizen inactive. Returns an error if already inactive.
func (c *Citizen) Deactivate(now time.Time) error {
	if !c.IsActive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "citizen is already inactive")
	}
	c.Status = StatusInactive
	c.UpdatedAt = now
	return nil
}

// Reactivate marks the citizen active. Returns an error if already active.
func (c *Citizen) Reactivate(now time.Time) error {
	if c.IsActive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "citizen is already active")
	}
	c.Status = StatusActive
	c.UpdatedAt = now
	return nil
}
