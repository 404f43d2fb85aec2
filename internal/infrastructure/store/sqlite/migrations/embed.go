package migrations

import "embed"

// FS contains embedded SQLite migrations for ghost run storage.
//
//go:embed *.sql
var FS embed.FS
