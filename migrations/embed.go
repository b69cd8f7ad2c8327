package migrations

import "embed"

// SQL holds the forward-only schema migrations compiled into the binary.
//
//go:embed *.sql
var SQL embed.FS
