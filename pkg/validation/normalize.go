package validation

import (
	"strings"

	dErrors "welfare/pkg/domain-errors"
)

const (
	// IdentifierLength is the digit count of a canonical citizen identifier.
	IdentifierLength = 11
	// PhoneLength is the digit count of a canonical phone number, country code included.
	PhoneLength = 11
)

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatIdentifier renders an identifier as "DDD-DDD-DDD DD". Input that does
// not reduce to exactly 11 digits is returned unchanged.
func FormatIdentifier(s string) string {
	d := StripNonDigits(s)
	if len(d) != IdentifierLength {
		return s
	}
	return d[0:3] + "-" + d[3:6] + "-" + d[6:9] + " " + d[9:11]
}

// FormatPhone renders a phone number as "+7 (DDD) DDD-DD-DD". A leading 8 is
// read as the domestic trunk prefix and replaced with the country code 7.
// Anything else is returned unchanged.
func FormatPhone(s string) string {
	d, ok := canonicalPhoneDigits(s)
	if !ok {
		return s
	}
	return "+7 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:9] + "-" + d[9:11]
}

// CanonicalIdentifier returns the 11-digit form of s, or a format error when
// s does not contain exactly 11 digits. It does not verify the checksum.
func CanonicalIdentifier(s string) (string, error) {
	d := StripNonDigits(s)
	if len(d) != IdentifierLength {
		return "", dErrors.New(dErrors.CodeFormat, "identifier must contain 11 digits")
	}
	return d, nil
}

// CanonicalPhone returns the 11-digit form of s starting with 7, or a format
// error when no such form exists.
func CanonicalPhone(s string) (string, error) {
	d, ok := canonicalPhoneDigits(s)
	if !ok {
		return "", dErrors.New(dErrors.CodeFormat, "phone must contain 11 digits starting with 7 or 8")
	}
	return d, nil
}

func canonicalPhoneDigits(s string) (string, bool) {
	d := StripNonDigits(s)
	if len(d) != PhoneLength {
		return "", false
	}
	if d[0] == '8' {
		d = "7" + d[1:]
	}
	if d[0] != '7' {
		return "", false
	}
	return d, true
}
