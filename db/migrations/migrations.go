// Package migrations embeds the SQL schema files applied at boot via
// golang-migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
