// Package render defines the view model handed to display surfaces. The
// rendering itself is an external collaborator: embedders implement
// Renderer and subscribe it to the tracker.
package render

import (
	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/schedule"
	"github.com/ocampo/deskplan/stats"
)

// Renderer is the opaque display sink notified after each mutation.
// Display runs synchronously on the mutating call and receives the
// complete view; it must not call back into the tracker.
type Renderer interface {
	Display(View)
}

// Item is one rendered equipment row.
type Item struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Date    civil.Date `json:"date"`
	Weekday string     `json:"weekday"`
	Status  string     `json:"status"`
	People  int        `json:"people"`
	Office  office.ID  `json:"office_id,omitempty"`
	// Label is the relative-day tag ("1 day ago", "tomorrow", "in 3
	// days"); empty for today and for the management list.
	Label string `json:"label,omitempty"`
}

// ListView is one day-relative equipment list with its header figures.
// Count and PeopleSum cover every listed record regardless of status.
type ListView struct {
	Count     int    `json:"count"`
	PeopleSum int    `json:"people_sum"`
	Items     []Item `json:"items"`
}

// View is the full display state: the statistics panel, the three
// day-relative lists, and the management list sorted ascending by date.
type View struct {
	Date       civil.Date  `json:"date"`
	Stats      stats.Stats `json:"stats"`
	Today      ListView    `json:"today"`
	Past       ListView    `json:"past"`
	Future     ListView    `json:"future"`
	Management []Item      `json:"management"`
}

// NewItem builds an Item from a window entry.
func NewItem(e schedule.Entry) Item {
	return Item{
		ID:      e.Equipment.ID,
		Name:    e.Equipment.Name,
		Date:    e.Equipment.Date,
		Weekday: e.Equipment.Date.Weekday(),
		Status:  string(e.Equipment.Status),
		People:  e.Equipment.People,
		Office:  e.Equipment.Office,
		Label:   e.Label,
	}
}

// NewList builds a ListView from window entries, preserving their order.
func NewList(entries []schedule.Entry) ListView {
	lv := ListView{Count: len(entries)}
	for _, e := range entries {
		lv.PeopleSum += e.Equipment.People
		lv.Items = append(lv.Items, NewItem(e))
	}
	return lv
}
