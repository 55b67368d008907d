package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"welfare/pkg/domain"
)

var (
	emailPattern   = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern   = regexp.MustCompile(`^(\+7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)
	lettersPattern = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z\s\-]+$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	if !IsNotEmpty(s) {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is a Russian number with an optional +7 or 8
// prefix, an area code starting with 4, 8 or 9, and optional single spaces,
// hyphens or parentheses between the digit groups.
func IsValidPhone(s string) bool {
	if !IsNotEmpty(s) {
		return false
	}
	return phonePattern.MatchString(s)
}

// IsNotEmpty reports whether s has at least one non-whitespace character.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsOnlyLetters reports whether s is non-blank and made only of Cyrillic or
// Latin letters, whitespace and hyphens.
func IsOnlyLetters(s string) bool {
	if !IsNotEmpty(s) {
		return false
	}
	return lettersPattern.MatchString(s)
}

// HasMinLength reports whether s is at least n characters long. Only a
// non-positive n admits the empty string.
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// HasMaxLength reports whether s is empty or at most n characters long.
func HasMaxLength(s string, n int) bool {
	return s == "" || utf8.RuneCountInString(s) <= n
}

// IsNotFutureDate reports whether d is not after now.
func IsNotFutureDate(d, now time.Time) bool {
	return !d.After(now)
}

// IsValidBirthDate reports whether d is not after now and a person born on d
// would be at most 150 whole years old.
func IsValidBirthDate(d, now time.Time) bool {
	return domain.IsPlausibleBirthDate(d, now)
}
