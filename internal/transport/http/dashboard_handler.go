package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"parkpulse/internal/config"
	"parkpulse/internal/dashboard"
	apierrors "parkpulse/internal/errors"
	"parkpulse/internal/exporter"
	"parkpulse/internal/services"
)

// DashboardHandler serves the dashboard JSON API and the CSV export.
type DashboardHandler struct {
	service      *services.ScorecardService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates the handler.
func NewDashboardHandler(service *services.ScorecardService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the API routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/records", h.GetRecords)
	r.Get("/export/csv", h.ExportCSV)
	r.Post("/refresh", h.Refresh)

	return r
}

// DashboardResponse is the full payload behind one render of the
// page: metrics, chart series and the record table for the current
// filter, plus the filter metadata (player/venue lists, default
// player) from the unfiltered table.
type DashboardResponse struct {
	Summary       dashboard.Summary        `json:"summary"`
	Trend         []dashboard.TrendSeries  `json:"trend"`
	VenueAverages []dashboard.VenueAverage `json:"venue_averages,omitempty"`
	Distribution  []dashboard.BoxStats     `json:"distribution"`
	Rows          []dashboard.Row          `json:"rows"`
	Players       []string                 `json:"players"`
	Venues        []string                 `json:"venues"`
	DefaultPlayer string                   `json:"default_player"`
	Warnings      []string                 `json:"warnings,omitempty"`
	Empty         bool                     `json:"empty"`
}

// GetDashboard handles GET /api/dashboard?player=&venues=a,b.
// An empty filtered view is not an error; the page shows an
// informational message and the payload says Empty.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Table(r.Context())
	if err != nil {
		h.handleTableError(w, r, err)
		return
	}

	filter := parseFilter(r)
	view := table.View(filter)

	resp := DashboardResponse{
		Summary:       dashboard.Summarize(view),
		Trend:         dashboard.Trend(view),
		Distribution:  dashboard.Distribution(view),
		Rows:          dashboard.Rows(view),
		Players:       table.Players(),
		Venues:        table.Venues(),
		DefaultPlayer: table.DefaultPlayer(),
		Warnings:      h.service.Warnings(),
		Empty:         view.Len() == 0,
	}

	// Per-venue averages only make sense for one player's rounds.
	if filter.Player != "" {
		resp.VenueAverages = dashboard.VenueAverages(view)
	}

	render.JSON(w, r, resp)
}

// GetRecords handles GET /api/records with the same filter semantics.
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Table(r.Context())
	if err != nil {
		h.handleTableError(w, r, err)
		return
	}

	rows := dashboard.Rows(table.View(parseFilter(r)))
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"count":  len(rows),
	})
}

// ExportCSV handles GET /api/export/csv: the displayed record table
// as a UTF-8 BOM CSV download.
func (h *DashboardHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Table(r.Context())
	if err != nil {
		h.handleTableError(w, r, err)
		return
	}

	rows := dashboard.Rows(table.View(parseFilter(r)))
	data, err := exporter.RecordsDocument(rows).Bytes()
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.FileSystemError("csv export", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", config.ExportFileName))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Refresh handles POST /api/refresh: rebuild the table from disk and
// notify connected dashboards.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Refresh(r.Context())
	if err != nil {
		h.handleTableError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "table refreshed",
		slog.Int("records", table.Len()))

	render.JSON(w, r, map[string]interface{}{
		"status":   "success",
		"records":  table.Len(),
		"warnings": h.service.Warnings(),
	})
}

func (h *DashboardHandler) handleTableError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrNoRecords) {
		h.errorHandler.HandleError(w, r, apierrors.ErrNoScoreRecords)
		return
	}
	h.errorHandler.HandleError(w, r, err)
}

// parseFilter reads the filter state from the query string:
// player= exact name (empty = all), venues= comma-separated venue
// aliases (absent = all venues).
func parseFilter(r *http.Request) dashboard.Filter {
	q := r.URL.Query()

	var venues []string
	if raw, ok := q["venues"]; ok {
		venues = []string{}
		for _, chunk := range raw {
			for _, v := range strings.Split(chunk, ",") {
				if v = strings.TrimSpace(v); v != "" {
					venues = append(venues, v)
				}
			}
		}
	}

	return dashboard.Filter{
		Venues: venues,
		Player: strings.TrimSpace(q.Get("player")),
	}
}
