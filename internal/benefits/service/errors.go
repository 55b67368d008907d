package service

import (
	"errors"

	"welfare/internal/sentinel"
	dErrors "welfare/pkg/domain-errors"
)

func wrapCategoryErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "benefit category not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConstraintViolation, "a benefit category with this name already exists")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func wrapGrantErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "benefit not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func wrapCitizenErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "citizen not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

// invariantToConflict maps a refused state transition onto a conflict.
func invariantToConflict(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeConflict, err.Error())
	}
	return err
}
