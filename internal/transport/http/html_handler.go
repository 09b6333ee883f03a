package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"parkpulse/internal/config"
)

// PageHandler serves the embedded dashboard page at GET /.
type PageHandler struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewPageHandler parses the embedded template. The template is a
// compile-time constant, so a parse failure is a programming error.
func NewPageHandler(logger *slog.Logger) *PageHandler {
	return &PageHandler{
		tmpl:   template.Must(template.New("dashboard").Parse(pageHTML)),
		logger: logger.With(slog.String("component", "page_handler")),
	}
}

// ServePage handles GET /.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Title   string
		Version string
	}{
		Title:   config.AppName,
		Version: config.Version,
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render dashboard page",
			slog.String("error", err.Error()))
	}
}
