package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// render writes an HTML page. Template errors are logged, not surfaced;
// by the time execution fails part of the page may already be written.
func render(w http.ResponseWriter, name string, data any) {
	if data == nil {
		// Field lookups like .Error resolve to "" on a map but fail on nil.
		data = map[string]string{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render template", "template", name, "error", err)
	}
}
