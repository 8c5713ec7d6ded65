// Package state holds the application aggregate root — office capacities
// plus the equipment collection — and its persistence into a kv.Store.
package state

import (
	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/office"
)

// State is the aggregate root owned by exactly one tracker instance. The
// equipment collection is flat, tagged per record with its office, so both
// "all equipment" and "equipment for office X" queries are cheap.
type State struct {
	Offices   map[office.ID]office.Capacity `json:"offices"`
	Equipment []equipment.Equipment         `json:"equipment"`

	// Counter is the next equipment id to assign. It only ever grows;
	// deleted ids are never reissued.
	Counter int64 `json:"-"`
}

// NewState returns the zero-value state for the given offices: empty
// equipment, zero capacities, counter starting at 1.
func NewState(reg *office.Registry) *State {
	st := &State{
		Offices: make(map[office.ID]office.Capacity),
		Counter: 1,
	}
	for _, id := range reg.IDs() {
		st.Offices[id] = office.Capacity{}
	}
	return st
}

// NextID returns the current counter value and increments it. Call exactly
// once per created record, before assignment.
func (s *State) NextID() int64 {
	id := s.Counter
	s.Counter++
	return id
}

// Find returns a pointer into the equipment collection for the record with
// the given id inside the given office, or nil.
func (s *State) Find(id int64, off office.ID) *equipment.Equipment {
	for i := range s.Equipment {
		if s.Equipment[i].ID == id && s.Equipment[i].Office == off {
			return &s.Equipment[i]
		}
	}
	return nil
}

// Remove deletes the record with the given id inside the given office and
// reports whether anything was removed. The id is never reassigned.
func (s *State) Remove(id int64, off office.ID) bool {
	for i := range s.Equipment {
		if s.Equipment[i].ID == id && s.Equipment[i].Office == off {
			s.Equipment = append(s.Equipment[:i], s.Equipment[i+1:]...)
			return true
		}
	}
	return false
}

// ForOffice returns the equipment scoped to one office.
func (s *State) ForOffice(off office.ID) []equipment.Equipment {
	var out []equipment.Equipment
	for _, item := range s.Equipment {
		if item.Office == off {
			out = append(out, item)
		}
	}
	return out
}
