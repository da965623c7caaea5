// Package web embeds the gateway's HTML pages so both the binary and the
// handler tests load the same templates without filesystem paths.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page, keyed by file name.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
