// Package services wires the parse pipeline to the transport layer:
// the cached record table, refresh semantics and health reporting.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"parkpulse/internal/config"
	"parkpulse/internal/dashboard"
	"parkpulse/internal/infrastructure"
	"parkpulse/internal/scorecard"
	"parkpulse/internal/websocket"
)

// ErrNoRecords means every configured score card was missing or held
// no acceptable rows. The transport maps it to a blocking error.
var ErrNoRecords = errors.New("no score records parsed from configured score cards")

// ScorecardService owns the parse → table pipeline. The table is a
// pure function of the configured sources, computed once and cached;
// concurrent first loads are deduplicated with singleflight. Refresh
// rebuilds the table and notifies connected dashboards.
type ScorecardService struct {
	sources []scorecard.Source
	parser  *scorecard.Parser
	hub     *websocket.Hub
	logger  *slog.Logger

	group singleflight.Group

	mu       sync.RWMutex
	table    *dashboard.Table
	warnings []string
	loadedAt time.Time
}

// NewScorecardService creates the service. The hub may be nil (CLI
// use); refreshes then skip the broadcast.
func NewScorecardService(files config.Scorecards, hub *websocket.Hub, logger *slog.Logger) *ScorecardService {
	if logger == nil {
		logger = slog.Default()
	}

	sources := make([]scorecard.Source, len(files))
	for i, f := range files {
		sources[i] = scorecard.Source{Path: f.Path, Venue: f.Venue}
	}

	return &ScorecardService{
		sources: sources,
		parser:  scorecard.NewParser(logger),
		hub:     hub,
		logger:  logger.With(slog.String("component", "scorecard_service")),
	}
}

// Table returns the record table, parsing the score cards on first
// use. Returns ErrNoRecords when parsing produced nothing.
func (s *ScorecardService) Table(ctx context.Context) (*dashboard.Table, error) {
	s.mu.RLock()
	table := s.table
	s.mu.RUnlock()

	if table == nil {
		var err error
		table, err = s.load(ctx)
		if err != nil {
			return nil, err
		}
	}

	if table.Len() == 0 {
		return nil, ErrNoRecords
	}
	return table, nil
}

// Warnings returns the per-file warnings of the last parse pass.
func (s *ScorecardService) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warnings
}

// LoadedAt returns when the table was last rebuilt (zero before the
// first load).
func (s *ScorecardService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Sources returns the configured score-card sources.
func (s *ScorecardService) Sources() []scorecard.Source {
	return s.sources
}

// Refresh throws the cached table away, reparses every score card and
// broadcasts the reload to connected dashboards.
func (s *ScorecardService) Refresh(ctx context.Context) (*dashboard.Table, error) {
	s.mu.Lock()
	s.table = nil
	s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastTableReload(table.Len(), s.Warnings())
	}

	if table.Len() == 0 {
		return nil, ErrNoRecords
	}
	return table, nil
}

// load parses all sources exactly once even under concurrent callers.
func (s *ScorecardService) load(ctx context.Context) (*dashboard.Table, error) {
	v, err, _ := s.group.Do("table", func() (interface{}, error) {
		s.mu.RLock()
		cached := s.table
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		result, err := s.parser.Parse(ctx, s.sources)
		if err != nil {
			return nil, err
		}

		table := dashboard.NewTable(result.Records)
		infrastructure.TableReloads.Inc()

		s.mu.Lock()
		s.table = table
		s.warnings = result.Warnings
		s.loadedAt = time.Now()
		s.mu.Unlock()

		s.logger.InfoContext(ctx, "record table rebuilt",
			slog.Int("sources", len(s.sources)),
			slog.Int("rows_scanned", result.RowsScanned),
			slog.Int("records", table.Len()),
			slog.Int("warnings", len(result.Warnings)))

		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dashboard.Table), nil
}
