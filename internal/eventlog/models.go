package eventlog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	id "welfare/pkg/domain"
)

// Type names what happened. Values are stored and exported verbatim.
type Type string

const (
	TypeLogin       Type = "login"
	TypeLoginFailed Type = "login_failed"
	TypeLogout      Type = "logout"

	TypeRegionCreated Type = "region_created"
	TypeRegionUpdated Type = "region_updated"

	TypeCitizenCreated     Type = "citizen_created"
	TypeCitizenUpdated     Type = "citizen_updated"
	TypeCitizenDeactivated Type = "citizen_deactivated"
	TypeCitizenReactivated Type = "citizen_reactivated"

	TypeCategoryCreated     Type = "category_created"
	TypeCategoryUpdated     Type = "category_updated"
	TypeCategoryDeactivated Type = "category_deactivated"
	TypeCategoryReactivated Type = "category_reactivated"

	TypeGrantCreated     Type = "benefit_granted"
	TypeGrantUpdated     Type = "benefit_updated"
	TypeGrantDeactivated Type = "benefit_deactivated"

	TypeCertificateIssued   Type = "certificate_issued"
	TypeCertificateUpdated  Type = "certificate_updated"
	TypeCertificateAnnulled Type = "certificate_annulled"

	TypeUserCreated     Type = "user_created"
	TypeUserUpdated     Type = "user_updated"
	TypeUserDeactivated Type = "user_deactivated"
	TypeUserReactivated Type = "user_reactivated"

	TypeReportGenerated Type = "report_generated"
)

// EntityType names the kind of record an entry refers to.
type EntityType string

const (
	EntityRegion      EntityType = "region"
	EntityCitizen     EntityType = "citizen"
	EntityCategory    EntityType = "benefit_category"
	EntityGrant       EntityType = "benefit_grant"
	EntityCertificate EntityType = "certificate"
	EntityUser        EntityType = "user"
)

// Event is what services emit. The logger fills in the acting user, client
// metadata and timestamp from the request context.
type Event struct {
	Type        Type
	Description string
	EntityType  EntityType
	EntityID    uuid.UUID
	// UserID overrides the acting user from the context, as on login where
	// the session does not exist yet.
	UserID id.UserID
}

// Entry is one persisted event log row.
type Entry struct {
	ID          id.EventID
	UserID      *id.UserID
	Type        Type
	Description string
	EntityType  EntityType
	EntityID    *uuid.UUID
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// Device renders the stored User-Agent as "Browser on OS".
func (e *Entry) Device() string {
	return DeviceLabel(e.UserAgent)
}

// Filter narrows event log queries. Zero fields match everything; From and To
// are inclusive.
type Filter struct {
	UserID *id.UserID
	From   *time.Time
	To     *time.Time
	Type   Type
	Limit  int
}

// Matches reports whether e passes every set criterion.
func (f Filter) Matches(e *Entry) bool {
	if f.UserID != nil && (e.UserID == nil || *e.UserID != *f.UserID) {
		return false
	}
	if f.From != nil && e.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.CreatedAt.After(*f.To) {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	return true
}

// DeviceLabel extracts a display name such as "Chrome on Windows 10".
func DeviceLabel(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	os := ua.OS()
	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + os)
}
