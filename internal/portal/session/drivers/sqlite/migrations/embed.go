// Package migrations embeds the schema migration files so the binary can
// initialise its own database on first run.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
