package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/ocampo/deskplan/kv"
	"github.com/ocampo/deskplan/office"
)

// Persisted keys. The state blob and the id counter live under fixed names
// in the external store.
const (
	KeyData    = "officeData"
	KeyCounter = "equipmentIdCounter"
)

// Store serializes State to and from a kv.Store.
type Store struct {
	kv     kv.Store
	reg    *office.Registry
	logger *slog.Logger
}

// NewStore creates a state store over the given kv backend.
func NewStore(store kv.Store, reg *office.Registry, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{kv: store, reg: reg, logger: logger}
}

// Load reads the persisted state and counter. Absent keys yield the
// zero-value state. A malformed blob also falls back to the zero-value
// state rather than failing: the tracker must come up even when an older
// schema left unreadable data behind.
func (s *Store) Load(ctx context.Context) (*State, error) {
	st := NewState(s.reg)

	raw, err := s.kv.Get(ctx, KeyData)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		// first run
	case err != nil:
		return nil, fmt.Errorf("loading state: %w", err)
	default:
		var loaded State
		if jsonErr := json.Unmarshal([]byte(raw), &loaded); jsonErr != nil {
			s.logger.Warn("discarding malformed state blob", "key", KeyData, "error", jsonErr)
		} else {
			if loaded.Offices == nil {
				loaded.Offices = make(map[office.ID]office.Capacity)
			}
			st.Offices = loaded.Offices
			st.Equipment = loaded.Equipment
			// Offices added to the configuration since the last save
			// start at zero capacity.
			for _, id := range s.reg.IDs() {
				if _, ok := st.Offices[id]; !ok {
					st.Offices[id] = office.Capacity{}
				}
			}
		}
	}

	rawCounter, err := s.kv.Get(ctx, KeyCounter)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		// keep counter = 1
	case err != nil:
		return nil, fmt.Errorf("loading counter: %w", err)
	default:
		n, convErr := strconv.ParseInt(rawCounter, 10, 64)
		if convErr != nil || n < 1 {
			s.logger.Warn("discarding malformed id counter", "key", KeyCounter, "value", rawCounter)
		} else {
			st.Counter = n
		}
	}

	return st, nil
}

// Save serializes the state and counter back to the store.
func (s *Store) Save(ctx context.Context, st *State) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := s.kv.Set(ctx, KeyData, string(blob)); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCounter, strconv.FormatInt(st.Counter, 10)); err != nil {
		return fmt.Errorf("saving counter: %w", err)
	}
	return nil
}
