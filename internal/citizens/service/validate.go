package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"welfare/internal/citizens/models"
	"welfare/internal/sentinel"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/requestcontext"
	"welfare/pkg/validation"
)

// citizenFields is a command after trimming and canonicalization.
type citizenFields struct {
	lastName   string
	firstName  string
	middleName string
	birthDate  time.Time
	identifier string
	phone      string
	email      string
	address    string
	regionID   *id.RegionID
}

func (f citizenFields) applyTo(c *models.Citizen) {
	c.LastName = f.lastName
	c.FirstName = f.firstName
	c.MiddleName = f.middleName
	c.BirthDate = f.birthDate
	c.Identifier = f.identifier
	c.Phone = f.phone
	c.Email = f.email
	c.Address = f.address
	c.RegionID = f.regionID
}

// prepareCitizen validates cmd for the citizen self (nil for a new one) and
// returns the values to store. It must run inside the write transaction so the
// uniqueness answer is still true at commit.
func (s *Service) prepareCitizen(ctx context.Context, cmd *CitizenCommand, self id.CitizenID) (citizenFields, error) {
	if cmd == nil {
		return citizenFields{}, dErrors.New(dErrors.CodeBadRequest, "citizen data is required")
	}
	f := citizenFields{
		lastName:   strings.TrimSpace(cmd.LastName),
		firstName:  strings.TrimSpace(cmd.FirstName),
		middleName: strings.TrimSpace(cmd.MiddleName),
		birthDate:  dateOnly(cmd.BirthDate),
		phone:      strings.TrimSpace(cmd.Phone),
		email:      strings.TrimSpace(cmd.Email),
		address:    strings.TrimSpace(cmd.Address),
		regionID:   cmd.RegionID,
	}

	for _, check := range []struct {
		field string
		value string
		max   int
	}{
		{"last name", f.lastName, limits.MaxNameLength},
		{"first name", f.firstName, limits.MaxNameLength},
		{"middle name", f.middleName, limits.MaxNameLength},
		{"email", f.email, limits.MaxEmailLength},
		{"phone", f.phone, limits.MaxPhoneLength},
		{"address", f.address, limits.MaxAddressLength},
	} {
		if err := limits.CheckStringLength(check.field, check.value, check.max); err != nil {
			return f, err
		}
	}

	now := requestcontext.Now(ctx)
	if outcome := checkCitizenFields(f, cmd.Identifier, now); !outcome.Valid {
		return f, s.reject(outcome)
	}

	f.identifier, _ = validation.CanonicalIdentifier(cmd.Identifier)
	if canonical, err := validation.CanonicalPhone(f.phone); err == nil {
		f.phone = canonical
	}

	outcome, err := validation.CheckIdentifierUnique(ctx, validation.LookupFunc(s.citizens.IdentifierExists), f.identifier, self)
	if err != nil {
		return f, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check identifier")
	}
	if !outcome.Valid {
		return f, s.reject(outcome)
	}

	if f.regionID != nil {
		if _, err := s.regions.FindByID(ctx, *f.regionID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return f, s.reject(validation.Fail(validation.KindValidation, "region does not exist"))
			}
			return f, wrapRegionErr(err, "failed to load region")
		}
	}
	return f, nil
}

// checkCitizenFields applies the field rules in the order a data-entry form
// presents them and reports the first failure.
func checkCitizenFields(f citizenFields, rawIdentifier string, now time.Time) validation.Outcome {
	fail := func(reason string) validation.Outcome {
		return validation.Fail(validation.KindValidation, reason)
	}
	switch {
	case !validation.IsNotEmpty(f.lastName):
		return fail("last name is required")
	case !validation.IsOnlyLetters(f.lastName):
		return fail("last name must contain only letters, spaces and hyphens")
	case !validation.IsNotEmpty(f.firstName):
		return fail("first name is required")
	case !validation.IsOnlyLetters(f.firstName):
		return fail("first name must contain only letters, spaces and hyphens")
	case f.middleName != "" && !validation.IsOnlyLetters(f.middleName):
		return fail("middle name must contain only letters, spaces and hyphens")
	case !validation.IsValidBirthDate(f.birthDate, now):
		return fail("birth date must not be in the future or more than 150 years ago")
	case !validation.IsNotEmpty(rawIdentifier):
		return fail("identifier is required")
	}

	if _, err := validation.CanonicalIdentifier(rawIdentifier); err != nil {
		return validation.Fail(validation.KindFormat, "identifier must contain 11 digits")
	}
	if !validation.IsValidIdentifier(rawIdentifier) {
		return fail("identifier checksum is invalid")
	}
	if f.phone != "" && !validation.IsValidPhone(f.phone) {
		return fail("phone number is invalid")
	}
	if f.email != "" && !validation.IsValidEmail(f.email) {
		return fail("email is invalid")
	}
	return validation.Pass()
}

func (s *Service) reject(o validation.Outcome) error {
	s.metrics.IncValidationFailure(string(o.Kind))
	return o.Err()
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
