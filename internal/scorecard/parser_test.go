package scorecard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateMarker(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		wantDate string // "" means unknown (zero time)
		wantOK   bool
	}{
		{name: "six digit stamp expands to 2000s", cell: "250525", wantDate: "2025-05-25", wantOK: true},
		{name: "eight digit stamp", cell: "20240101", wantDate: "2024-01-01", wantOK: true},
		{name: "dotted date", cell: "2025.05.25", wantDate: "2025-05-25", wantOK: true},
		{name: "slashed short date", cell: "25/05/25", wantDate: "2025-05-25", wantOK: true},
		{name: "mixed separators", cell: "2025.05/25", wantDate: "2025-05-25", wantOK: true},
		{name: "seven digit stamp is not a marker", cell: "2250525", wantOK: false},
		{name: "player name is not a marker", cell: "김철수", wantOK: false},
		{name: "score is not a marker", cell: "85", wantOK: false},
		{name: "trailing text disqualifies", cell: "250525 오전", wantOK: false},
		{name: "impossible month still resets the cursor", cell: "259905", wantDate: "", wantOK: true},
		{name: "impossible day still resets the cursor", cell: "20240199", wantDate: "", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := parseDateMarker(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantDate == "" {
				assert.True(t, date.IsZero())
			} else {
				assert.Equal(t, tt.wantDate, date.Format("2006-01-02"))
			}
		})
	}
}

func TestParseRows_DateCursor(t *testing.T) {
	p := NewParser(nil)

	rows := [][]string{
		{"250525"},
		{"김철수", "80"},
		{"이영희", "90"},
		{"20240101"},
		{"박민수", "70"},
	}

	records := p.parseRows(rows, "양천생태")
	require.Len(t, records, 3)

	may := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "김철수", records[0].Player)
	assert.Equal(t, may, records[0].Date)
	assert.Equal(t, 80, records[0].Total)

	assert.Equal(t, "이영희", records[1].Player)
	assert.Equal(t, may, records[1].Date)

	assert.Equal(t, "박민수", records[2].Player)
	assert.Equal(t, jan, records[2].Date)
	assert.Equal(t, "양천생태", records[2].Venue)
}

func TestParseRows_ScoreRowsBeforeFirstMarkerHaveUnknownDate(t *testing.T) {
	p := NewParser(nil)

	records := p.parseRows([][]string{
		{"김철수", "85"},
		{"250525"},
		{"김철수", "80"},
	}, "소양강")

	require.Len(t, records, 2)
	assert.False(t, records[0].DateKnown())
	assert.True(t, records[1].DateKnown())
}

func TestParseRows_ScoreBounds(t *testing.T) {
	tests := []struct {
		name      string
		cell      string
		wantTotal int // 0 means no record emitted
	}{
		{name: "below lower bound", cell: "29"},
		{name: "lower bound inclusive", cell: "30", wantTotal: 30},
		{name: "upper bound inclusive", cell: "150", wantTotal: 150},
		{name: "above upper bound", cell: "151"},
		{name: "running sum rejected", cell: "420"},
		{name: "float truncated not rounded", cell: "85.9", wantTotal: 85},
		{name: "not a number", cell: "결석"},
		{name: "empty score cell", cell: ""},
	}

	p := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := p.parseRows([][]string{{"김철수", tt.cell}}, "소양강")
			if tt.wantTotal == 0 {
				assert.Empty(t, records)
				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantTotal, records[0].Total)
		})
	}
}

func TestParseRows_FloatTruncation(t *testing.T) {
	p := NewParser(nil)
	records := p.parseRows([][]string{{"김철수", "92.0"}}, "소양강")
	require.Len(t, records, 1)
	assert.Equal(t, 92, records[0].Total)
}

func TestParseRows_Sentinels(t *testing.T) {
	p := NewParser(nil)

	rows := [][]string{
		{"이름", "80"},
		{"TTL", "85"},
		{"nan", "90"},
		{"None", "95"},
		{"", "100"},
		{"  ", "100"}, // trims to empty
		{"김철수", "88"},
	}

	records := p.parseRows(rows, "산천어")
	require.Len(t, records, 1)
	assert.Equal(t, "김철수", records[0].Player)
}

func TestParseRows_ShortAndEmptyRows(t *testing.T) {
	p := NewParser(nil)

	records := p.parseRows([][]string{
		{},
		{"김철수"},
		{"김철수", "80", "9", "8", "7"},
	}, "산천어")

	require.Len(t, records, 1)
	assert.Equal(t, 80, records[0].Total)
}

func TestParse_MissingFileSkippedSilently(t *testing.T) {
	p := NewParser(nil)

	res, err := p.Parse(context.Background(), []Source{
		{Path: filepath.Join(t.TempDir(), "absent.csv"), Venue: "양천생태"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Warnings, "missing files are not warnings")
}

func TestParse_UnreadableFileWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()

	// A directory with a .csv name opens but fails to read as CSV.
	bad := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.Mkdir(bad, 0o755))

	good := filepath.Join(dir, "good.csv")
	require.NoError(t, os.WriteFile(good, []byte("250525\n김철수,80\n"), 0o644))

	p := NewParser(nil)
	res, err := p.Parse(context.Background(), []Source{
		{Path: bad, Venue: "양천생태"},
		{Path: good, Venue: "소양강"},
	})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "broken.csv")

	require.Len(t, res.Records, 1)
	assert.Equal(t, "소양강", res.Records[0].Venue)
}

func TestParse_MultipleSourcesKeepFileOrder(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(first, []byte("250601\n김철수,82\n"), 0o644))
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(second, []byte("250501\n김철수,78\n"), 0o644))

	p := NewParser(nil)
	res, err := p.Parse(context.Background(), []Source{
		{Path: first, Venue: "양천생태"},
		{Path: second, Venue: "소양강"},
	})
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "양천생태", res.Records[0].Venue, "parser keeps file order, sorting is the table's job")
	assert.Equal(t, "소양강", res.Records[1].Venue)
	assert.Equal(t, 4, res.RowsScanned)
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewParser(nil)
	_, err := p.Parse(ctx, []Source{{Path: "whatever.csv", Venue: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
}
