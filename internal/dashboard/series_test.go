package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse/pkg/contracts/domain"
)

func TestTrend(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "양천생태", "김철수", 80),
		rec("", "소양강", "김철수", 85),
		rec("2025-06-01", "양천생태", "김철수", 78),
		rec("2025-06-02", "소양강", "김철수", 82),
	})

	series := Trend(table)
	require.Len(t, series, 2)

	assert.Equal(t, "양천생태", series[0].Venue)
	require.Len(t, series[0].Points, 2)
	assert.Equal(t, TrendPoint{Date: "2025-05-25", Total: 80}, series[0].Points[0])
	assert.Equal(t, TrendPoint{Date: "2025-06-01", Total: 78}, series[0].Points[1])

	assert.Equal(t, "소양강", series[1].Venue)
	require.Len(t, series[1].Points, 1, "unknown-date record stays off the chart")
}

func TestTrend_EmptyView(t *testing.T) {
	assert.Empty(t, Trend(NewTable(nil)))
}

func TestVenueAverages(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "양천생태", "김철수", 80),
		rec("2025-05-26", "양천생태", "김철수", 85),
		rec("2025-06-01", "소양강", "김철수", 76),
	})

	avgs := VenueAverages(table)
	require.Len(t, avgs, 2)
	assert.Equal(t, VenueAverage{Venue: "양천생태", Mean: 82.5}, avgs[0])
	assert.Equal(t, VenueAverage{Venue: "소양강", Mean: 76}, avgs[1])
}

func TestVenueAverages_RoundsToOneDecimal(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "소양강", "김철수", 80),
		rec("2025-05-26", "소양강", "김철수", 81),
		rec("2025-05-27", "소양강", "김철수", 81),
	})

	avgs := VenueAverages(table)
	require.Len(t, avgs, 1)
	assert.Equal(t, 80.7, avgs[0].Mean)
}

func TestDistribution(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-01", "소양강", "김철수", 70),
		rec("2025-05-02", "소양강", "김철수", 80),
		rec("2025-05-03", "소양강", "김철수", 90),
		rec("2025-05-04", "소양강", "김철수", 100),
		rec("2025-05-05", "소양강", "김철수", 110),
	})

	stats := Distribution(table)
	require.Len(t, stats, 1)
	assert.Equal(t, BoxStats{
		Venue:  "소양강",
		Min:    70,
		Q1:     80,
		Median: 90,
		Q3:     100,
		Max:    110,
	}, stats[0])
}

func TestDistribution_InterpolatedQuartiles(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-01", "소양강", "김철수", 70),
		rec("2025-05-02", "소양강", "김철수", 80),
		rec("2025-05-03", "소양강", "김철수", 90),
		rec("2025-05-04", "소양강", "김철수", 100),
	})

	stats := Distribution(table)
	require.Len(t, stats, 1)
	assert.InDelta(t, 77.5, stats[0].Q1, 0.0001)
	assert.InDelta(t, 85, stats[0].Median, 0.0001)
	assert.InDelta(t, 92.5, stats[0].Q3, 0.0001)
}

func TestDistribution_SingleRecord(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-01", "소양강", "김철수", 85),
	})

	stats := Distribution(table)
	require.Len(t, stats, 1)
	assert.Equal(t, BoxStats{Venue: "소양강", Min: 85, Q1: 85, Median: 85, Q3: 85, Max: 85}, stats[0])
}

func TestRows_DescendingWithUnknownLast(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "양천생태", "김철수", 80),
		rec("", "소양강", "이영희", 90),
		rec("2025-06-01", "소양강", "김철수", 78),
	})

	rows := Rows(table)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Date: "2025-06-01", Venue: "소양강", Name: "김철수", Score: 78}, rows[0])
	assert.Equal(t, "2025-05-25", rows[1].Date)
	assert.Equal(t, "", rows[2].Date, "unknown dates sink to the bottom of the table")
}

func TestRows_DoesNotMutateView(t *testing.T) {
	table := NewTable([]domain.ScoreRecord{
		rec("2025-05-25", "양천생태", "김철수", 80),
		rec("2025-06-01", "소양강", "김철수", 78),
	})

	_ = Rows(table)

	records := table.Records()
	assert.Equal(t, day("2025-05-25"), records[0].Date, "view stays date-ascending")
}
