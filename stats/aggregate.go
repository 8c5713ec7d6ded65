// Package stats computes occupancy summary statistics from the application
// state and a date-window partition.
package stats

import (
	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/schedule"
	"github.com/ocampo/deskplan/state"
)

// OfficeStats exposes the per-office capacity figures alongside the
// cross-office totals.
type OfficeStats struct {
	ID       office.ID `json:"id"`
	Fixed    int       `json:"fixed_seats"`
	Rotative int       `json:"rotative_seats"`
}

// Stats is the dashboard summary. Totals sum capacities and occupancy
// across every office.
type Stats struct {
	TotalSeats             int           `json:"total_seats"`
	FixedSeats             int           `json:"fixed_seats"`
	RotativeSeats          int           `json:"rotative_seats"`
	OccupiedRotativeToday  int           `json:"occupied_rotative_today"`
	AvailableRotativeToday int           `json:"available_rotative_today"`
	TodayEquipmentCount    int           `json:"today_equipment_count"`
	PastCount              int           `json:"past_count"`
	PastPeopleSum          int           `json:"past_people_sum"`
	FutureCount            int           `json:"future_count"`
	FuturePeopleSum        int           `json:"future_people_sum"`
	Offices                []OfficeStats `json:"offices"`
}

// Aggregate computes Stats from state capacities and a window partition.
// Only present-status records scheduled today occupy a rotating seat;
// absent records scheduled today do not. Availability never goes negative:
// over-booking is absorbed, not flagged.
func Aggregate(st *state.State, reg *office.Registry, w schedule.Result) Stats {
	var out Stats
	for _, id := range reg.IDs() {
		c := st.Offices[id]
		out.FixedSeats += c.Fixed
		out.RotativeSeats += c.Rotative
		out.Offices = append(out.Offices, OfficeStats{
			ID:       id,
			Fixed:    c.Fixed,
			Rotative: c.Rotative,
		})
	}
	out.TotalSeats = out.FixedSeats + out.RotativeSeats

	for _, entry := range w.Present {
		if entry.Equipment.Status == equipment.StatusPresent {
			out.OccupiedRotativeToday += entry.Equipment.People
			out.TodayEquipmentCount++
		}
	}
	out.AvailableRotativeToday = out.RotativeSeats - out.OccupiedRotativeToday
	if out.AvailableRotativeToday < 0 {
		out.AvailableRotativeToday = 0
	}

	out.PastCount = len(w.Past)
	for _, entry := range w.Past {
		out.PastPeopleSum += entry.Equipment.People
	}
	out.FutureCount = len(w.Future)
	for _, entry := range w.Future {
		out.FuturePeopleSum += entry.Equipment.People
	}

	return out
}
