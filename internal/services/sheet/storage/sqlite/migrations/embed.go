package migrations

import "embed"

// FS contains the embedded sheet store migrations.
//
//go:embed *.sql
var FS embed.FS
