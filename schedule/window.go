// Package schedule partitions equipment records around a reference date
// into past, present and future windows for day-relative views.
package schedule

import (
	"fmt"

	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/equipment"
)

// DefaultSpan is how many days the past and future windows reach.
const DefaultSpan = 10

// Entry is one record inside a window, tagged with its day offset from the
// reference date and a human-readable relative label. Present-day entries
// carry offset 0 and no label.
type Entry struct {
	Equipment equipment.Equipment
	Offset    int
	Label     string
}

// Result holds the three partitions produced by Window.
type Result struct {
	Past    []Entry
	Present []Entry
	Future  []Entry
}

// Window partitions items around ref. For each offset 1..span it computes
// ref-offset and ref+offset as calendar dates and collects every record
// whose date string matches; records on ref itself land in Present.
// Matching is by date-string equality. Duplicate records sharing a date all
// appear; records more than span days away appear in no partition. The
// result is recomputed fully on every call.
func Window(items []equipment.Equipment, ref civil.Date, span int) Result {
	if span <= 0 {
		span = DefaultSpan
	}

	var res Result
	for _, item := range items {
		if item.Date == ref {
			res.Present = append(res.Present, Entry{Equipment: item})
		}
	}

	for offset := 1; offset <= span; offset++ {
		past := ref.AddDays(-offset)
		future := ref.AddDays(offset)
		for _, item := range items {
			switch item.Date {
			case past:
				res.Past = append(res.Past, Entry{
					Equipment: item,
					Offset:    offset,
					Label:     pastLabel(offset),
				})
			case future:
				res.Future = append(res.Future, Entry{
					Equipment: item,
					Offset:    offset,
					Label:     futureLabel(offset),
				})
			}
		}
	}

	return res
}

func pastLabel(offset int) string {
	if offset == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", offset)
}

func futureLabel(offset int) string {
	if offset == 1 {
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", offset)
}
