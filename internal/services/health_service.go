package services

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// SourceStatus describes one configured score card on disk.
type SourceStatus struct {
	Path       string     `json:"path"`
	Venue      string     `json:"venue"`
	Exists     bool       `json:"exists"`
	SizeBytes  int64      `json:"size_bytes,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// HealthStatus is the aggregate health report.
type HealthStatus struct {
	Status   string         `json:"status"` // healthy | degraded
	Version  string         `json:"version"`
	Records  int            `json:"records"`
	Warnings []string       `json:"warnings,omitempty"`
	Sources  []SourceStatus `json:"sources"`
	LoadedAt *time.Time     `json:"loaded_at,omitempty"`
}

// HealthService reports liveness, readiness and score-card presence.
type HealthService struct {
	version    string
	scorecards *ScorecardService
	logger     *slog.Logger
}

// NewHealthService creates the health service.
func NewHealthService(version string, scorecards *ScorecardService, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:    version,
		scorecards: scorecards,
		logger:     logger.With(slog.String("component", "health_service")),
	}
}

// Check builds the aggregate health report. Missing score cards mark
// the service degraded, never down: the dashboard still serves
// whatever parsed.
func (h *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:  "healthy",
		Version: h.version,
	}

	anyPresent := false
	for _, src := range h.scorecards.Sources() {
		ss := SourceStatus{Path: src.Path, Venue: src.Venue}
		if info, err := os.Stat(src.Path); err == nil {
			ss.Exists = true
			ss.SizeBytes = info.Size()
			mod := info.ModTime()
			ss.ModifiedAt = &mod
			anyPresent = true
		}
		status.Sources = append(status.Sources, ss)
	}
	if !anyPresent {
		status.Status = "degraded"
	}

	if table, err := h.scorecards.Table(ctx); err == nil {
		status.Records = table.Len()
	} else {
		status.Status = "degraded"
	}
	status.Warnings = h.scorecards.Warnings()
	if len(status.Warnings) > 0 {
		status.Status = "degraded"
	}

	if t := h.scorecards.LoadedAt(); !t.IsZero() {
		status.LoadedAt = &t
	}

	return status
}

// Ready reports whether the table has been loaded with records.
func (h *HealthService) Ready(ctx context.Context) bool {
	_, err := h.scorecards.Table(ctx)
	return err == nil
}
