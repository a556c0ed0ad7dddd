package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// messageView is rendered by message.html after a trigger page finished.
type messageView struct {
	Message string
}

// renderPage executes the named template into a buffer first, so a failing
// template never leaves a half-written page behind.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		writeError(w, r, "renderPage", fmt.Errorf("%w %s: %w", ErrRenderingPage, name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
