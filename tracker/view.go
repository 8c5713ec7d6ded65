package tracker

import (
	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/office"
	"github.com/ocampo/deskplan/render"
	"github.com/ocampo/deskplan/schedule"
	"github.com/ocampo/deskplan/stats"
)

// View computes the full display state relative to ref. It is a pure read:
// windowing and aggregation run fresh on every call.
func (s *Service) View(ref civil.Date) render.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(ref)
}

// ViewToday is View relative to the current local date.
func (s *Service) ViewToday() render.View {
	return s.View(civil.Today())
}

func (s *Service) viewLocked(ref civil.Date) render.View {
	w := schedule.Window(s.st.Equipment, ref, s.span)

	view := render.View{
		Date:   ref,
		Stats:  stats.Aggregate(s.st, s.reg, w),
		Today:  render.NewList(w.Present),
		Past:   render.NewList(stats.SortPast(w.Past)),
		Future: render.NewList(stats.SortFuture(w.Future)),
	}
	for _, item := range stats.SortByDate(s.st.Equipment) {
		view.Management = append(view.Management, render.NewItem(schedule.Entry{Equipment: item}))
	}
	return view
}

// Equipment returns a copy of the stored collection, insertion-ordered.
func (s *Service) Equipment() []equipment.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]equipment.Equipment(nil), s.st.Equipment...)
}

// Capacity returns the capacity counters for one office.
func (s *Service) Capacity(off office.ID) (office.Capacity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resolved, err := s.resolveOffice(off)
	if err != nil {
		return office.Capacity{}, err
	}
	return s.st.Offices[resolved], nil
}
