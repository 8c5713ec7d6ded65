// Package tracker is the mutation API over the seat/occupancy state. Every
// mutation persists the state and notifies subscribed renderers; reads are
// pure. There is no ambient instance: embedders construct a Service at
// startup and own its lifecycle.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/render"
	"github.com/ocampo/deskplan/schedule"
	"github.com/ocampo/deskplan/state"
)

// Service owns the application state and serializes every mutation. The
// model is single-caller run-to-completion; the mutex only exists so that
// embedding in a concurrent host keeps mutate-persist-notify atomic.
type Service struct {
	mu          sync.Mutex
	st          *state.State
	store       *state.Store
	reg         *office.Registry
	span        int
	logger      *slog.Logger
	subscribers map[string]render.Renderer
	batchDepth  int
}

// New loads the persisted state and returns a ready service. span controls
// how many days the past/future windows reach; 0 means the default.
func New(ctx context.Context, store *state.Store, reg *office.Registry, span int, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if span <= 0 {
		span = schedule.DefaultSpan
	}

	st, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tracker state: %w", err)
	}

	return &Service{
		st:          st,
		store:       store,
		reg:         reg,
		span:        span,
		logger:      logger,
		subscribers: make(map[string]render.Renderer),
	}, nil
}

// CreateRequest describes an equipment creation. People arrives as the raw
// form value and is coerced to a non-negative integer.
type CreateRequest struct {
	Name   string
	Date   string
	Status equipment.Status
	People string
	Office office.ID
}

// AddEquipment validates the request, assigns the next id, appends the
// record, persists, and notifies renderers. Validation failures abort with
// no state change.
func (s *Service) AddEquipment(ctx context.Context, req CreateRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := req.Status
	if status == "" {
		status = equipment.StatusPresent
	}

	date, err := equipment.ValidateNew(req.Name, req.Date, status)
	if err != nil {
		return 0, err
	}

	off, err := s.resolveOffice(req.Office)
	if err != nil {
		return 0, err
	}

	item := equipment.Equipment{
		ID:     s.st.NextID(),
		Name:   req.Name,
		Date:   date,
		Status: status,
		People: equipment.ParsePeople(req.People),
		Office: off,
	}
	s.st.Equipment = append(s.st.Equipment, item)

	if err := s.store.Save(ctx, s.st); err != nil {
		return 0, err
	}

	s.logger.Debug("equipment added", "id", item.ID, "office", item.Office, "date", item.Date)
	s.notifyLocked()
	return item.ID, nil
}

// DeleteEquipment removes the record scoped to the given office. An
// unknown id is a silent no-op. Any confirmation prompt is the caller's
// concern.
func (s *Service) DeleteEquipment(ctx context.Context, id int64, off office.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := s.resolveOffice(off)
	if err != nil {
		return err
	}
	if !s.st.Remove(id, resolved) {
		return nil
	}

	if err := s.store.Save(ctx, s.st); err != nil {
		return err
	}

	s.logger.Debug("equipment deleted", "id", id, "office", resolved)
	s.notifyLocked()
	return nil
}

// UpdateDate reschedules a record. An unknown id is a silent no-op; the
// new date must be a valid calendar date.
func (s *Service) UpdateDate(ctx context.Context, id int64, off office.ID, date string) error {
	parsed, err := civil.ParseDate(date)
	if err != nil {
		return equipment.ErrDateInvalid
	}
	return s.updateField(ctx, id, off, func(item *equipment.Equipment) {
		item.Date = parsed
	})
}

// UpdateStatus flips a record between present and absent. An unknown id is
// a silent no-op.
func (s *Service) UpdateStatus(ctx context.Context, id int64, off office.ID, status equipment.Status) error {
	if !status.Valid() {
		return equipment.ErrStatusInvalid
	}
	return s.updateField(ctx, id, off, func(item *equipment.Equipment) {
		item.Status = status
	})
}

// UpdatePeople sets a record's head count from a raw form value; bad input
// coerces to 0. An unknown id is a silent no-op.
func (s *Service) UpdatePeople(ctx context.Context, id int64, off office.ID, raw string) error {
	return s.updateField(ctx, id, off, func(item *equipment.Equipment) {
		item.People = equipment.ParsePeople(raw)
	})
}

func (s *Service) updateField(ctx context.Context, id int64, off office.ID, apply func(*equipment.Equipment)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := s.resolveOffice(off)
	if err != nil {
		return err
	}
	item := s.st.Find(id, resolved)
	if item == nil {
		return nil
	}
	apply(item)

	if err := s.store.Save(ctx, s.st); err != nil {
		return err
	}
	s.notifyLocked()
	return nil
}

// UpdateCapacity sets one capacity counter for an office from a raw form
// value; bad input coerces to 0.
func (s *Service) UpdateCapacity(ctx context.Context, off office.ID, kind office.Kind, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := s.resolveOffice(off)
	if err != nil {
		return err
	}

	c := s.st.Offices[resolved]
	switch kind {
	case office.KindFixed:
		c.Fixed = office.ParseSeats(raw)
	case office.KindRotative:
		c.Rotative = office.ParseSeats(raw)
	default:
		return fmt.Errorf("unknown capacity kind %q", kind)
	}
	s.st.Offices[resolved] = c

	if err := s.store.Save(ctx, s.st); err != nil {
		return err
	}

	s.logger.Debug("capacity updated", "office", resolved, "kind", kind)
	s.notifyLocked()
	return nil
}

// resolveOffice maps an empty id to the default office and rejects ids
// outside the configured set.
func (s *Service) resolveOffice(off office.ID) (office.ID, error) {
	if off == "" {
		return s.reg.Default(), nil
	}
	if !s.reg.Contains(off) {
		return "", office.ErrUnknownOffice
	}
	return off, nil
}
