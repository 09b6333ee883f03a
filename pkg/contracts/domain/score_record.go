// Package domain contains the data types shared between the parser,
// the dashboard aggregation layer and the HTTP transport.
package domain

import (
	"encoding/json"
	"time"
)

// DateFormat is the canonical date rendering used across the API,
// the record table and the CSV export.
const DateFormat = "2006-01-02"

// ScoreRecord is one player's total for one round at one venue.
// A zero Date means the score row appeared before any date-marker row
// in its source file ("unknown date").
type ScoreRecord struct {
	Date   time.Time `json:"-"`
	Venue  string    `json:"venue"`
	Player string    `json:"player"`
	Total  int       `json:"total"`
}

// DateKnown reports whether the record carries a real calendar date.
func (r ScoreRecord) DateKnown() bool {
	return !r.Date.IsZero()
}

// DateText renders the date as YYYY-MM-DD, or "" for unknown dates.
func (r ScoreRecord) DateText() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(DateFormat)
}

// MarshalJSON emits the date as a YYYY-MM-DD string (null when
// unknown) alongside the regular fields.
func (r ScoreRecord) MarshalJSON() ([]byte, error) {
	type alias ScoreRecord
	var date *string
	if r.DateKnown() {
		s := r.DateText()
		date = &s
	}
	return json.Marshal(struct {
		Date *string `json:"date"`
		alias
	}{Date: date, alias: alias(r)})
}
