package tracker

import (
	"context"

	"github.com/google/uuid"

	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/render"
)

// Subscribe registers a renderer to receive the full view after every
// mutation, and returns a token for Unsubscribe. Mutation and presentation
// stay decoupled: nothing renders unless something subscribed.
func (s *Service) Subscribe(r render.Renderer) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.subscribers[token] = r
	return token
}

// Unsubscribe removes a previously registered renderer. Unknown tokens are
// ignored.
func (s *Service) Unsubscribe(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, token)
}

// Batch runs several mutations with notifications suppressed, then emits a
// single notification. Each mutation inside still persists individually.
func (s *Service) Batch(ctx context.Context, fn func(*Service) error) error {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	err := fn(s)

	s.mu.Lock()
	s.batchDepth--
	depth := s.batchDepth
	s.mu.Unlock()

	if depth == 0 {
		s.Notify()
	}
	return err
}

// Notify recomputes the view for today and pushes it to every subscriber.
// Embedders call it once after startup to draw the initial state.
func (s *Service) Notify() {
	s.mu.Lock()
	view := s.viewLocked(civil.Today())
	targets := make([]render.Renderer, 0, len(s.subscribers))
	for _, r := range s.subscribers {
		targets = append(targets, r)
	}
	s.mu.Unlock()

	for _, r := range targets {
		r.Display(view)
	}
}

// notifyLocked fans out the current view while the mutation lock is held.
// Suppressed inside a batch.
func (s *Service) notifyLocked() {
	if s.batchDepth > 0 || len(s.subscribers) == 0 {
		return
	}
	view := s.viewLocked(civil.Today())
	for _, r := range s.subscribers {
		r.Display(view)
	}
}
