package service

import (
	"errors"

	"welfare/internal/sentinel"
	dErrors "welfare/pkg/domain-errors"
)

// Error wrapping helpers translate sentinel errors to domain errors.

func wrapCitizenErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "citizen not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConstraintViolation, "a citizen with this identifier is already registered")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func wrapRegionErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "region not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConstraintViolation, "region name must be unique")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
