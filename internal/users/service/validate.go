package service

import (
	"context"
	"strings"

	"welfare/internal/users/models"
	dErrors "welfare/pkg/domain-errors"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/validation"
)

// prepareUser validates cmd and applies it to u, which has a nil ID when it
// is being created. The password is hashed only when one is given.
func (s *Service) prepareUser(ctx context.Context, cmd *UserCommand, u *models.User) error {
	if cmd == nil {
		return dErrors.New(dErrors.CodeBadRequest, "user data is required")
	}
	creating := u.ID.IsNil()
	username := strings.TrimSpace(cmd.Username)
	lastName := strings.TrimSpace(cmd.LastName)
	firstName := strings.TrimSpace(cmd.FirstName)
	middleName := strings.TrimSpace(cmd.MiddleName)
	email := strings.TrimSpace(cmd.Email)
	phone := strings.TrimSpace(cmd.Phone)

	for _, check := range []struct {
		field string
		value string
		max   int
	}{
		{"username", username, models.MaxUsernameLength},
		{"last name", lastName, limits.MaxNameLength},
		{"first name", firstName, limits.MaxNameLength},
		{"middle name", middleName, limits.MaxNameLength},
		{"email", email, limits.MaxEmailLength},
		{"phone", phone, limits.MaxPhoneLength},
	} {
		if err := limits.CheckStringLength(check.field, check.value, check.max); err != nil {
			return err
		}
	}

	fail := func(reason string) error {
		return s.reject(validation.Fail(validation.KindValidation, reason))
	}
	switch {
	case !validation.HasMinLength(username, models.MinUsernameLength):
		return fail("username must be at least 3 characters long")
	case creating && !validation.HasMinLength(cmd.Password, models.MinPasswordLength):
		return fail("password must be at least 4 characters long")
	case !creating && cmd.Password != "" && !validation.HasMinLength(cmd.Password, models.MinPasswordLength):
		return fail("password must be at least 4 characters long")
	case !validation.IsNotEmpty(lastName):
		return fail("last name is required")
	case !validation.IsNotEmpty(firstName):
		return fail("first name is required")
	case email != "" && !validation.IsValidEmail(email):
		return fail("email is invalid")
	case phone != "" && !validation.IsValidPhone(phone):
		return fail("phone number is invalid")
	case !cmd.Role.IsValid():
		return fail("role must be one of admin, operator or citizen")
	}

	outcome, err := validation.CheckUsernameUnique(ctx, validation.LookupFunc(s.store.UsernameExists), username, u.ID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check username")
	}
	if !outcome.Valid {
		return s.reject(outcome)
	}

	if cmd.Password != "" {
		hash, err := s.hasher.Hash(cmd.Password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	if canonical, err := validation.CanonicalPhone(phone); err == nil {
		phone = canonical
	}
	u.Username = username
	u.LastName = lastName
	u.FirstName = firstName
	u.MiddleName = middleName
	u.Email = email
	u.Phone = phone
	u.Role = cmd.Role
	return nil
}

func (s *Service) reject(o validation.Outcome) error {
	s.metrics.IncValidationFailure(string(o.Kind))
	return o.Err()
}
