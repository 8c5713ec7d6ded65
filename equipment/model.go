// Package equipment defines the scheduled team/group records that consume
// rotating seats, plus the validation applied when they are created.
package equipment

import (
	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/office"
)

// Status represents the attendance state of a scheduled record.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Equipment is one scheduled team/group occupying rotating seats on a
// given date. IDs are assigned from a monotonic counter and never reused,
// even after deletion.
type Equipment struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Date   civil.Date `json:"date"`
	Status Status     `json:"status"`
	People int        `json:"people"`
	Office office.ID  `json:"office_id,omitempty"`
}
