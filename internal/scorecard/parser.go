package scorecard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"parkpulse/internal/infrastructure"
	"parkpulse/pkg/contracts/domain"
)

// Source maps one score-card file to the venue alias shown on the
// dashboard.
type Source struct {
	Path  string `json:"path"`
	Venue string `json:"venue"`
}

// Result is the outcome of one parse pass over all configured sources.
// Records appear in file-then-row order; the parser never sorts.
type Result struct {
	Records     []domain.ScoreRecord
	Warnings    []string
	RowsScanned int
}

// Parser extracts score records from the configured score cards.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger.With(slog.String("component", "scorecard_parser"))}
}

// Parse scans every configured score card and collects records.
// Missing files are skipped silently; files that fail to open or
// decode produce a warning naming the file and parsing continues with
// the remaining sources. No failure here is fatal.
func (p *Parser) Parse(ctx context.Context, sources []Source) (*Result, error) {
	res := &Result{}

	for _, src := range sources {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			p.logger.DebugContext(ctx, "score card not present, skipping",
				slog.String("path", src.Path),
				slog.String("venue", src.Venue))
			continue
		}

		rows, err := rowsFromFile(src.Path)
		if err != nil {
			warning := fmt.Sprintf("%s: %v", src.Path, err)
			res.Warnings = append(res.Warnings, warning)
			infrastructure.ParseWarnings.Inc()
			p.logger.WarnContext(ctx, "score card unreadable, skipping",
				slog.String("path", src.Path),
				slog.String("error", err.Error()))
			continue
		}

		before := len(res.Records)
		res.Records = append(res.Records, p.parseRows(rows, src.Venue)...)
		res.RowsScanned += len(rows)

		p.logger.InfoContext(ctx, "score card parsed",
			slog.String("path", src.Path),
			slog.String("venue", src.Venue),
			slog.Int("rows", len(rows)),
			slog.Int("records", len(res.Records)-before))
	}

	infrastructure.RowsScanned.Add(float64(res.RowsScanned))
	infrastructure.RecordsParsed.Add(float64(len(res.Records)))

	return res, nil
}

// parseRows walks one sheet top to bottom, carrying the date cursor
// forward across rows.
func (p *Parser) parseRows(rows [][]string, venue string) []domain.ScoreRecord {
	var records []domain.ScoreRecord
	var current time.Time // zero until the first date-marker row

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := strings.TrimSpace(row[0])

		if date, ok := parseDateMarker(first); ok {
			current = date
			continue // a date-marker row carries no score
		}

		if isSentinel(first) {
			continue
		}

		if len(row) < 2 {
			continue
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			continue // sub-header or annotation, not a score row
		}
		if total < MinTotal || total > MaxTotal {
			continue // distance or running sum, not a round total
		}

		records = append(records, domain.ScoreRecord{
			Date:   current,
			Venue:  venue,
			Player: first,
			Total:  int(total), // truncate, matching the card convention
		})
	}

	return records
}

// parseDateMarker interprets a trimmed first cell as a date-marker.
// Six digit stamps are read as YYMMDD in the 2000s, eight digit
// stamps as YYYYMMDD. A stamp that matches the pattern but is not a
// real calendar date (e.g. month 99) still counts as a marker: it
// resets the cursor to unknown rather than leaking the previous date
// onto unrelated rows.
func parseDateMarker(cell string) (time.Time, bool) {
	if !datePattern.MatchString(cell) {
		return time.Time{}, false
	}

	digits := strings.NewReplacer(".", "", "/", "").Replace(cell)
	switch len(digits) {
	case 6:
		digits = "20" + digits
	case 8:
		// already YYYYMMDD
	default:
		return time.Time{}, false
	}

	date, err := time.Parse("20060102", digits)
	if err != nil {
		return time.Time{}, true
	}
	return date, true
}
