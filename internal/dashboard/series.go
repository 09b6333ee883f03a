package dashboard

import (
	"math"
	"sort"

	"parkpulse/pkg/contracts/domain"
)

// TrendPoint is one dated total on the trend chart.
type TrendPoint struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// TrendSeries is one venue's line on the trend chart, points in
// date-ascending order. Unknown-date records have no x position and
// are left off the chart; they still appear in the record table.
type TrendSeries struct {
	Venue  string       `json:"venue"`
	Points []TrendPoint `json:"points"`
}

// Trend groups a view into one series per venue, venues in
// first-occurrence order.
func Trend(view *Table) []TrendSeries {
	byVenue := make(map[string]*TrendSeries)
	var series []*TrendSeries

	for _, r := range view.Records() {
		if !r.DateKnown() {
			continue
		}
		s, ok := byVenue[r.Venue]
		if !ok {
			s = &TrendSeries{Venue: r.Venue}
			byVenue[r.Venue] = s
			series = append(series, s)
		}
		s.Points = append(s.Points, TrendPoint{Date: r.DateText(), Total: r.Total})
	}

	out := make([]TrendSeries, len(series))
	for i, s := range series {
		out[i] = *s
	}
	return out
}

// VenueAverage is one bar on the per-venue average chart.
type VenueAverage struct {
	Venue string  `json:"venue"`
	Mean  float64 `json:"mean"`
}

// VenueAverages computes the mean total per venue, rounded to one
// decimal, venues in first-occurrence order. The handler only asks
// for this when a specific player is selected.
func VenueAverages(view *Table) []VenueAverage {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range view.Records() {
		sums[r.Venue] += r.Total
		counts[r.Venue]++
	}

	venues := view.Venues()
	out := make([]VenueAverage, 0, len(venues))
	for _, v := range venues {
		mean := float64(sums[v]) / float64(counts[v])
		out = append(out, VenueAverage{
			Venue: v,
			Mean:  math.Round(mean*10) / 10,
		})
	}
	return out
}

// BoxStats is the five-number summary behind one box on the
// distribution chart.
type BoxStats struct {
	Venue  string  `json:"venue"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Distribution computes per-venue box-plot statistics with
// linear-interpolation quartiles, venues in first-occurrence order.
func Distribution(view *Table) []BoxStats {
	totals := make(map[string][]float64)
	for _, r := range view.Records() {
		totals[r.Venue] = append(totals[r.Venue], float64(r.Total))
	}

	venues := view.Venues()
	out := make([]BoxStats, 0, len(venues))
	for _, v := range venues {
		values := totals[v]
		sort.Float64s(values)
		out = append(out, BoxStats{
			Venue:  v,
			Min:    values[0],
			Q1:     quantile(values, 0.25),
			Median: quantile(values, 0.5),
			Q3:     quantile(values, 0.75),
			Max:    values[len(values)-1],
		})
	}
	return out
}

// quantile interpolates linearly between the two nearest ranks of a
// sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Row is one line of the full-record table, dates rendered as
// YYYY-MM-DD ("" for unknown).
type Row struct {
	Date  string `json:"date"`
	Venue string `json:"venue"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Rows projects a view to the record table, sorted descending by
// date. Unknown-date records sort last, mirroring their
// earliest-possible position in the ascending view.
func Rows(view *Table) []Row {
	records := append([]domain.ScoreRecord(nil), view.Records()...)
	sort.SliceStable(records, func(i, j int) bool {
		return dateLess(records[j], records[i])
	})

	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Date:  r.DateText(),
			Venue: r.Venue,
			Name:  r.Player,
			Score: r.Total,
		}
	}
	return rows
}
