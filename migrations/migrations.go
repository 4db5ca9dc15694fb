// Package migrations embeds the schema migrations of every supported store, one directory per driver.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
