package service

import (
	"time"

	id "welfare/pkg/domain"
)

// GrantCommand carries the fields of a new benefit grant. Dates are reduced
// to their calendar day.
type GrantCommand struct {
	CitizenID   id.CitizenID
	CategoryID  id.CategoryID
	StartDate   time.Time
	EndDate     *time.Time
	Number      string
	Description string
}

// UpdateGrantCommand replaces the editable fields of a grant. The citizen a
// grant belongs to never changes.
type UpdateGrantCommand struct {
	CategoryID  id.CategoryID
	StartDate   time.Time
	EndDate     *time.Time
	Number      string
	Description string
}
