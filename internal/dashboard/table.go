package dashboard

import (
	"sort"

	"parkpulse/pkg/contracts/domain"
)

// Table is the in-memory record table, sorted ascending by date.
// Unknown-date records sort before all dated records; within equal
// dates the parser's file-then-row order is preserved.
type Table struct {
	records []domain.ScoreRecord
}

// NewTable copies the parsed records into a date-ascending table.
func NewTable(records []domain.ScoreRecord) *Table {
	sorted := append([]domain.ScoreRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateLess(sorted[i], sorted[j])
	})
	return &Table{records: sorted}
}

// dateLess orders records ascending by date with unknown dates first.
func dateLess(a, b domain.ScoreRecord) bool {
	switch {
	case !a.DateKnown() && !b.DateKnown():
		return false
	case !a.DateKnown():
		return true
	case !b.DateKnown():
		return false
	default:
		return a.Date.Before(b.Date)
	}
}

// Len returns the number of records in the table.
func (t *Table) Len() int { return len(t.records) }

// Records returns the table's records in date-ascending order. The
// slice is shared; callers must not mutate it.
func (t *Table) Records() []domain.ScoreRecord { return t.records }

// Filter selects a view: venue set membership first, then an optional
// exact player match. A nil venue list means all venues; an empty
// player means show all players.
type Filter struct {
	Venues []string
	Player string
}

// View derives a new filtered table. Filtering preserves order, so a
// view of a sorted table stays sorted; applying venue and player
// filters in either order yields the same view.
func (t *Table) View(f Filter) *Table {
	var venueSet map[string]struct{}
	if f.Venues != nil {
		venueSet = make(map[string]struct{}, len(f.Venues))
		for _, v := range f.Venues {
			venueSet[v] = struct{}{}
		}
	}

	view := make([]domain.ScoreRecord, 0, len(t.records))
	for _, r := range t.records {
		if venueSet != nil {
			if _, ok := venueSet[r.Venue]; !ok {
				continue
			}
		}
		if f.Player != "" && r.Player != f.Player {
			continue
		}
		view = append(view, r)
	}
	return &Table{records: view}
}

// Venues lists the distinct venues in first-occurrence order.
func (t *Table) Venues() []string {
	return distinct(t.records, func(r domain.ScoreRecord) string { return r.Venue })
}

// Players lists the distinct player names in first-occurrence order.
func (t *Table) Players() []string {
	return distinct(t.records, func(r domain.ScoreRecord) string { return r.Player })
}

// DefaultPlayer returns the name with the most records, ties broken
// by first occurrence in table order. Empty table returns "".
func (t *Table) DefaultPlayer() string {
	counts := make(map[string]int, len(t.records))
	for _, r := range t.records {
		counts[r.Player]++
	}

	best := ""
	bestCount := 0
	for _, name := range t.Players() {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

func distinct(records []domain.ScoreRecord, key func(domain.ScoreRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
