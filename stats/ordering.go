package stats

import (
	"sort"

	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/schedule"
)

// Display ordering is a contract of the rendered lists only; the stored
// collection keeps insertion order and nothing else relies on it.

// SortByDate orders a copy of items ascending by date, for the management
// list. ISO date strings sort correctly as plain strings.
func SortByDate(items []equipment.Equipment) []equipment.Equipment {
	out := append([]equipment.Equipment(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// SortPast orders a copy of past entries descending by date, most recent
// first.
func SortPast(entries []schedule.Entry) []schedule.Entry {
	out := append([]schedule.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Equipment.Date > out[j].Equipment.Date
	})
	return out
}

// SortFuture orders a copy of future entries ascending by day offset,
// soonest first.
func SortFuture(entries []schedule.Entry) []schedule.Entry {
	out := append([]schedule.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}
