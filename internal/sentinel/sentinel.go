// Package sentinel holds the errors stores return for conditions services
// translate into domain errors.
package sentinel

import "errors"

var (
	// ErrNotFound means no row matches the requested ID or key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed means a unique key such as an identifier, username or
	// category name belongs to another row.
	ErrAlreadyUsed = errors.New("already used")
)
