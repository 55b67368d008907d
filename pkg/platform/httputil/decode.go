package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/requestcontext"
)

// Normalizer trims and canonicalizes a decoded request before validation.
type Normalizer interface {
	Normalize()
}

// Validator rejects a normalized request. Domain errors keep their code;
// anything else is reported as validation_error.
type Validator interface {
	Validate() error
}

// Decode reads exactly one JSON object from the body into a new T. Unknown
// fields are rejected. On failure the response has been written and ok is
// false.
func Decode[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	var v T
	if err := decodeStrict(r.Body, &v); err != nil {
		ctx := r.Context()
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeTooLarge(w)
		case errors.Is(err, io.EOF):
			WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body is empty"))
		default:
			WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		}
		return nil, false
	}
	return &v, true
}

// Bind decodes the body, then normalizes and validates it when T supports
// those steps.
func Bind[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	v, ok := Decode[T](w, r, logger)
	if !ok {
		return nil, false
	}
	if err := Prepare(v); err != nil {
		ctx := r.Context()
		logger.WarnContext(ctx, "request rejected",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		var domainErr *dErrors.Error
		if !errors.As(err, &domainErr) {
			err = dErrors.New(dErrors.CodeValidation, err.Error())
		}
		WriteError(w, err)
		return nil, false
	}
	return v, true
}

// Prepare runs Normalize then Validate on req if it implements them.
func Prepare(req any) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func decodeStrict(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func writeTooLarge(w http.ResponseWriter) {
	WriteJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
		"error":             "request_too_large",
		"error_description": "request body exceeds the size limit",
	})
}
