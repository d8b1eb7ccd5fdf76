// Package migrations embeds the goose SQL migrations for the default
// persisted-state layout: a users table and a sessions table.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
