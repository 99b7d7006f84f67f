package migrations

import "embed"

// FS 事件紀錄的 SQLite migrations
//
//go:embed *.sql
var FS embed.FS
