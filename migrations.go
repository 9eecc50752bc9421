// Package matchup holds assets shared by the binary and the tests, such as
// the embedded SQL migrations.
package matchup

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
