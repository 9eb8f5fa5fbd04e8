package ioweb

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

func (s *Server) initTemplates() error {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	s.tmpl = tmpl
	return nil
}

func assetsHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// the embedded tree always contains assets/
		panic(err)
	}
	return http.FileServerFS(sub)
}

// render executes a template into a buffer first, so a template failure
// produces a clean 500 instead of a half-written page.
func (s *Server) render(
	w http.ResponseWriter,
	name string,
	data any,
	status int,
) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Cannot render page", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

type messageView struct {
	Title        string
	Message      string
	ContactEmail string
}

// renderMessage shows a plain user-facing message page.
func (s *Server) renderMessage(
	w http.ResponseWriter,
	message string,
	status int,
) {
	s.render(w, "message.html", messageView{
		Title:        "EModelDB",
		Message:      message,
		ContactEmail: ContactEmail,
	}, status)
}

// renderError shows the user-facing text of an error.
func (s *Server) renderError(
	w http.ResponseWriter,
	err error,
	status int,
) {
	slog.Warn("Request failed", "error", err)
	s.renderMessage(w, userMessage(err), status)
}
