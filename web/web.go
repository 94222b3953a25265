package web

import "embed"

// Templates holds the embedded web/templates directory.
// Handlers parse it via template.ParseFS at construction.
//
//go:embed templates
var Templates embed.FS
