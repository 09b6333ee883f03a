// Package scorecard turns loosely structured score-card spreadsheets
// into ScoreRecord values.
//
// Score cards are headerless sheets written by hand: a row whose first
// cell is a date stamp ("250525", "2024.08.08") opens a round, and the
// rows after it hold one player per line with the round total in the
// second cell. The parser walks each sheet top to bottom, carries the
// most recent date forward, and accepts a row as a score only when its
// cells have the right shape. The accepted shapes live in tokens.go as
// a versioned constant set; changing any of them changes which rows
// are accepted.
package scorecard
