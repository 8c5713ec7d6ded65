// Package office defines the closed set of office identifiers and the seat
// capacity tracked for each one.
package office

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownOffice indicates an office identifier outside the configured set.
var ErrUnknownOffice = errors.New("unknown office")

// ID identifies one office scope. The valid set is fixed at construction
// time by the Registry; identifiers are never assembled at runtime.
type ID string

// Capacity holds the seat counters for a single office.
type Capacity struct {
	// Fixed seats are permanently assigned and excluded from daily
	// occupancy accounting.
	Fixed int `json:"fixed_seats"`
	// Rotative seats are shared capacity consumed by present-status
	// equipment on its scheduled date.
	Rotative int `json:"rotative_seats"`
}

// Kind selects which capacity counter a mutation targets.
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindRotative Kind = "rotative"
)

// Info describes one configured office.
type Info struct {
	ID   ID     `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Registry is the closed set of offices, in declared order.
type Registry struct {
	infos []Info
	index map[ID]int
}

// DefaultID is the office used when a deployment configures no offices.
const DefaultID ID = "main"

// NewRegistry builds a registry from the configured offices. Blank and
// duplicate ids are dropped; an empty list yields a single default office.
func NewRegistry(infos []Info) *Registry {
	r := &Registry{index: make(map[ID]int)}
	for _, info := range infos {
		info.ID = ID(strings.TrimSpace(string(info.ID)))
		if info.ID == "" {
			continue
		}
		if _, dup := r.index[info.ID]; dup {
			continue
		}
		if info.Name == "" {
			info.Name = string(info.ID)
		}
		r.index[info.ID] = len(r.infos)
		r.infos = append(r.infos, info)
	}
	if len(r.infos) == 0 {
		r.index[DefaultID] = 0
		r.infos = append(r.infos, Info{ID: DefaultID, Name: string(DefaultID)})
	}
	return r
}

// Contains reports whether id is one of the configured offices.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.index[id]
	return ok
}

// IDs returns the office identifiers in declared order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.infos))
	for i, info := range r.infos {
		ids[i] = info.ID
	}
	return ids
}

// Infos returns the configured offices in declared order.
func (r *Registry) Infos() []Info {
	return append([]Info(nil), r.infos...)
}

// Default returns the first configured office. Single-office deployments
// route every record through it.
func (r *Registry) Default() ID {
	return r.infos[0].ID
}

// ParseSeats parses a raw seat-count input. Non-numeric or negative input
// coerces to 0; bad form values never surface as errors.
func ParseSeats(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
