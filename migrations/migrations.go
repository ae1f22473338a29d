// Package migrations embeds the goose SQL migrations so they can be
// applied without shipping loose files alongside the binary.
package migrations

import "embed"

// FS holds every migration file in lexical (and therefore version) order.
//
//go:embed *.sql
var FS embed.FS
