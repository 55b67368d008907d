package service

import (
	"errors"

	"welfare/internal/sentinel"
	dErrors "welfare/pkg/domain-errors"
)

func wrapCertificateErr(err error, action string) error {
	if isNotFound(err) {
		return dErrors.New(dErrors.CodeNotFound, "certificate not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func isNotFound(err error) bool {
	return errors.Is(err, sentinel.ErrNotFound)
}

func requireCertificateID(certificateID interface{ IsNil() bool }) error {
	if certificateID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "certificate ID required")
	}
	return nil
}
