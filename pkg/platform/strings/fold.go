// Package strings provides string manipulation utilities shared by request
// DTOs and stores.
package strings

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey returns the trimmed, Unicode case-folded form of s. Two values
// that differ only in letter case (Latin or Cyrillic) share a key, so it is
// used for case-insensitive uniqueness of usernames, category and region names.
//
// Example:
//
//	FoldKey("  Ветераны ТРУДА ") == FoldKey("ветераны труда") // true
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	c := cases.Fold()
	return strings.Contains(c.String(s), c.String(substr))
}

// TrimOptional trims the pointed-to value and returns nil when it is empty.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
