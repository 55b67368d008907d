package models

import (
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

// DefaultExpiryWindowDays is the look-ahead used when listing expiring grants.
const DefaultExpiryWindowDays = 30

// Grant assigns a benefit category to a citizen for a period. A nil EndDate
// means the grant does not expire. Dates carry no time of day.
type Grant struct {
	ID          id.GrantID
	CitizenID   id.CitizenID
	CategoryID  id.CategoryID
	StartDate   time.Time
	EndDate     *time.Time
	Number      string
	Description string
	Status      Status
	CreatedBy   id.UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g *Grant) IsActive() bool {
	return g.Status == StatusActive
}

// IsCurrent reports whether the grant is active and has not ended before
// today. A grant ending today is still current.
func (g *Grant) IsCurrent(today time.Time) bool {
	return g.IsActive() && (g.EndDate == nil || !g.EndDate.Before(Day(today)))
}

// ExpiresWithin reports whether an active grant ends between today and
// today+days, both inclusive.
func (g *Grant) ExpiresWithin(today time.Time, days int) bool {
	if !g.IsActive() || g.EndDate == nil {
		return false
	}
	from := Day(today)
	to := from.AddDate(0, 0, days)
	return !g.EndDate.Before(from) && !g.EndDate.After(to)
}

func (g *Grant) Deactivate(now time.Time) error {
	if g.Status == StatusInactive {
		return dErrors.New(dErrors.CodeInvariantViolation, "benefit is already inactive")
	}
	g.Status = StatusInactive
	g.UpdatedAt = now
	return nil
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayPtr is Day for optional dates.
func DayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Day(*t)
	return &d
}
