package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templates embed.FS

// TemplatesFS exposes the built-in document template so callers can reuse or
// extend it without importing embed details.
func TemplatesFS() fs.FS {
	return templates
}
