package service

import (
	"time"

	"welfare/internal/certificates/models"
	id "welfare/pkg/domain"
)

// CertificateCommand carries the editable fields of a certificate.
type CertificateCommand struct {
	CitizenID id.CitizenID
	Type      models.Type
	IssueDate time.Time
	Notes     string
}

// ListQuery selects certificates. Search matches any part of the holder's
// name; it is combined with CitizenID when both are given.
type ListQuery struct {
	CitizenID       *id.CitizenID
	Type            models.Type
	From            *time.Time
	To              *time.Time
	Search          string
	IncludeAnnulled bool
}
