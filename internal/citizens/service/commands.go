package service

import (
	"time"

	id "welfare/pkg/domain"
)

// CitizenCommand carries the editable fields of a citizen for create and
// update. Identifier and Phone are raw input; the service canonicalizes them.
type CitizenCommand struct {
	LastName   string
	FirstName  string
	MiddleName string
	BirthDate  time.Time
	Identifier string
	Phone      string
	Email      string
	Address    string
	RegionID   *id.RegionID
}
