package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "welfare/pkg/domain-errors"
	pstrings "welfare/pkg/platform/strings"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]func(string) bool{
		"notblank":   IsNotEmpty,
		"identifier": IsValidIdentifier,
		"phone":      IsValidPhone,
		"letters":    IsOnlyLetters,
	}
	for tag, check := range custom {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
	}
	return v
}

// jsonFieldName names fields by their JSON key so messages match what the
// client sent. Untagged fields fall back to the Go name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// tagMessages holds the message suffix per validator tag; %s is the tag's
// parameter where it has one.
var tagMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"uuid":       "must be a valid uuid",
	"min":        "must be at least %s characters",
	"max":        "must be at most %s characters",
	"notblank":   "must not be blank",
	"identifier": "must be a valid 11-digit identifier",
	"phone":      "must be a valid phone number",
	"letters":    "must contain only letters, spaces and hyphens",
}

// Validate checks req's validate tags and reports the first failure as a
// validation_failed domain error.
func Validate(req any) error {
	if err := structValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ErrorMessage describes the first field error in err, naming the field in
// snake_case.
func ErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request body"
	}
	fe := fieldErrs[0]
	field := pstrings.SnakeCase(fe.Field())
	if field == "" {
		return "invalid request body"
	}

	tag := fe.ActualTag()
	if tag == "oneof" {
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	msg, ok := tagMessages[tag]
	if !ok {
		return field + " is invalid"
	}
	if strings.Contains(msg, "%s") {
		msg = fmt.Sprintf(msg, fe.Param())
	}
	return field + " " + msg
}
