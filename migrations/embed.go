// Package migrations holds the numbered schema files applied by
// database.Migrate at server start and by welfarectl migrations apply.
package migrations

import "embed"

//go:embed *.up.sql *.down.sql
var FS embed.FS
