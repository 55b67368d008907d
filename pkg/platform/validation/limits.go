package validation

import (
	"unicode/utf8"

	dErrors "welfare/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Collection limits
const (
	// MaxBatchIDs is the maximum number of IDs accepted by a batch lookup.
	MaxBatchIDs = 500

	// MaxListLimit caps the page size of list endpoints.
	MaxListLimit = 1000

	// DefaultLatestEvents is how many entries the latest-events view returns.
	DefaultLatestEvents = 100
)

// String element length limits, counted in characters.
const (
	// MaxNameLength bounds personal names, usernames, region and category names.
	MaxNameLength = 128

	// MaxAddressLength bounds postal addresses.
	MaxAddressLength = 512

	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255

	// MaxPhoneLength bounds raw phone input before normalization.
	MaxPhoneLength = 32

	// MaxTextLength bounds free text such as notes, descriptions and legal basis.
	MaxTextLength = 2000

	// MaxGrantNumberLength bounds the reference number of a benefit decision.
	MaxGrantNumberLength = 64

	// MaxSearchLength bounds search queries.
	MaxSearchLength = 128
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.Newf(dErrors.CodeValidation, "too many %s: max %d allowed", fieldName, max)
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.Newf(dErrors.CodeValidation, "%s exceeds max length of %d", fieldName, max)
	}
	return nil
}

// CheckOptionalLength is CheckStringLength for optional fields.
func CheckOptionalLength(fieldName string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return CheckStringLength(fieldName, *value, max)
}
