package dashboard

import (
	"encoding/json"
	"math"
)

// Summary is the metric strip at the top of the dashboard, computed
// over the currently filtered view. Lower totals are better, so Best
// is the minimum. Latest is the total of the chronologically last
// record in the date-ascending view.
type Summary struct {
	Rounds int
	Mean   float64 // NaN when the view is empty
	Best   int     // 0 placeholder when the view is empty
	Latest int     // 0 placeholder when the view is empty
}

// Summarize computes the summary metrics for a view.
func Summarize(view *Table) Summary {
	records := view.Records()
	if len(records) == 0 {
		return Summary{Mean: math.NaN()}
	}

	sum := 0
	best := records[0].Total
	for _, r := range records {
		sum += r.Total
		if r.Total < best {
			best = r.Total
		}
	}

	return Summary{
		Rounds: len(records),
		Mean:   float64(sum) / float64(len(records)),
		Best:   best,
		Latest: records[len(records)-1].Total,
	}
}

// MarshalJSON renders the mean as null for an empty view; NaN has no
// JSON representation and the page shows a placeholder instead.
func (s Summary) MarshalJSON() ([]byte, error) {
	var mean *float64
	if !math.IsNaN(s.Mean) {
		m := math.Round(s.Mean*10) / 10
		mean = &m
	}
	return json.Marshal(struct {
		Rounds int      `json:"rounds"`
		Mean   *float64 `json:"mean"`
		Best   int      `json:"best"`
		Latest int      `json:"latest"`
	}{s.Rounds, mean, s.Best, s.Latest})
}
