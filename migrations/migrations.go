// Package migrations embeds the SQL schema so binaries migrate without the source tree.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS
