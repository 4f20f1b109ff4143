// Package migrations embeds the SQL schema so cmd/migrate and the repository
// integration tests apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
