package scorecard

import "regexp"

// HeuristicVersion identifies the accepted-row heuristic. Bump it
// whenever datePattern, the sentinel list or the score bounds change.
const HeuristicVersion = "v1"

// datePattern matches a trimmed first cell that encodes a date: 2-4
// digits, 2 digits, 2 digits, with optional '.' or '/' separators.
// The cell is only treated as a date marker when its digit-only form
// has length 6 (YYMMDD) or 8 (YYYYMMDD).
var datePattern = regexp.MustCompile(`^(\d{2,4})[./]?(\d{2})[./]?(\d{2})$`)

// sentinelTokens are first-cell values that disqualify a row from
// being a score row: the spreadsheet's total/name column headers and
// the missing-value markers spreadsheet exports leave behind.
var sentinelTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"TTL":  {},
	"이름":   {},
	"None": {},
}

// Totals outside [MinTotal, MaxTotal] are non-score artifacts on the
// card (hole distances, running sums) and are dropped.
const (
	MinTotal = 30
	MaxTotal = 150
)

// isSentinel reports whether a trimmed first cell is reserved.
func isSentinel(cell string) bool {
	_, ok := sentinelTokens[cell]
	return ok
}
