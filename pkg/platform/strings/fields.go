package strings

import (
	"strings"
	"unicode"
)

// TrimSpace trims each non-nil string in place.
func TrimSpace(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// SnakeCase turns a Go field name into its JSON spelling: "BirthDate"
// becomes "birth_date" and "CitizenID" becomes "citizen_id".
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && startsWord(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// startsWord reports whether the upper-case rune at i begins a new word:
// after a lower-case rune, or as the last capital of an acronym.
func startsWord(runes []rune, i int) bool {
	if unicode.IsLower(runes[i-1]) {
		return true
	}
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
