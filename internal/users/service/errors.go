package service

import (
	"errors"

	"welfare/internal/sentinel"
	dErrors "welfare/pkg/domain-errors"
)

var errInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "invalid username or password")

func wrapUserErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConstraintViolation, "username is already taken")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

// invariantToConflict reports a state transition that does not apply, such
// as deactivating an inactive user, as a conflict.
func invariantToConflict(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeConflict, err.Error())
	}
	return err
}
