package validation

import "fmt"

// IsValidIdentifier verifies the control number of an 11-digit citizen
// identifier. The first nine digits are weighted 9 down to 1 and summed.
// Sums below 100 are the control number itself, 100 and 101 map to 0, and
// larger sums are reduced modulo 101 with a remainder of 100 mapping to 0.
// The result must equal the two trailing digits.
func IsValidIdentifier(s string) bool {
	d := StripNonDigits(s)
	if len(d) != IdentifierLength {
		return false
	}
	trailer := int(d[9]-'0')*10 + int(d[10]-'0')
	return identifierChecksum(d) == trailer
}

// WithControlNumber appends the control number to the first nine digits of
// base, yielding a valid 11-digit identifier. Base must hold at least nine
// digits; extra digits are ignored.
func WithControlNumber(base string) (string, bool) {
	d := StripNonDigits(base)
	if len(d) < 9 {
		return "", false
	}
	d = d[:9]
	return fmt.Sprintf("%s%02d", d, identifierChecksum(d)), true
}

// identifierChecksum expects at least nine ASCII digits.
func identifierChecksum(d string) int {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(d[i]-'0') * (9 - i)
	}
	switch {
	case sum < 100:
		return sum
	case sum == 100, sum == 101:
		return 0
	default:
		c := sum % 101
		if c == 100 {
			return 0
		}
		return c
	}
}
