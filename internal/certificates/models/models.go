package models

import (
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
)

// Type is the kind of document a certificate attests.
type Type string

const (
	TypeBenefits          Type = "benefits"
	TypeStatus            Type = "status"
	TypeIncome            Type = "income"
	TypeFamilyComposition Type = "family_composition"
)

// Types lists every certificate type in display order.
var Types = []Type{TypeBenefits, TypeStatus, TypeIncome, TypeFamilyComposition}

func (t Type) IsValid() bool {
	switch t {
	case TypeBenefits, TypeStatus, TypeIncome, TypeFamilyComposition:
		return true
	}
	return false
}

// Title is the human-readable name used in exports.
func (t Type) Title() string {
	switch t {
	case TypeBenefits:
		return "Benefits certificate"
	case TypeStatus:
		return "Status certificate"
	case TypeIncome:
		return "Income certificate"
	case TypeFamilyComposition:
		return "Family composition certificate"
	}
	return string(t)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusAnnulled Status = "annulled"
)

// Certificate records a document issued to a citizen. Certificates are never
// removed; a mistaken one is annulled.
type Certificate struct {
	ID        id.CertificateID
	CitizenID id.CitizenID
	Type      Type
	IssueDate time.Time
	Notes     string
	IssuedBy  id.UserID
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Certificate) IsAnnulled() bool {
	return c.Status == StatusAnnulled
}

func (c *Certificate) Annul(now time.Time) error {
	if c.IsAnnulled() {
		return dErrors.New(dErrors.CodeInvariantViolation, "certificate is already annulled")
	}
	c.Status = StatusAnnulled
	c.UpdatedAt = now
	return nil
}

// Filter narrows List. Zero fields do not filter. From and To bound the
// issue date inclusively.
type Filter struct {
	CitizenIDs      []id.CitizenID
	Type            Type
	From            *time.Time
	To              *time.Time
	IncludeAnnulled bool
}

// Matches applies the filter to a single certificate.
func (f Filter) Matches(c *Certificate) bool {
	if !f.IncludeAnnulled && c.IsAnnulled() {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if f.From != nil && c.IssueDate.Before(*f.From) {
		return false
	}
	if f.To != nil && c.IssueDate.After(*f.To) {
		return false
	}
	if f.CitizenIDs != nil {
		for _, citizenID := range f.CitizenIDs {
			if c.CitizenID == citizenID {
				return true
			}
		}
		return false
	}
	return true
}

// TypeCount is the number of non-annulled certificates of one type.
type TypeCount struct {
	Type  Type
	Count int
}
