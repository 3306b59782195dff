// Package locales embeds the message catalogs for the shell and HTTP API.
package locales

import "embed"

// FS holds one YAML file per language at its root.
//
//go:embed *.yaml
var FS embed.FS
