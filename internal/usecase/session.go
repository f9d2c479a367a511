package usecase

import (
	"sync"

	"estate-booking/internal/domain/booking"
)

// WizardSession guards one wizard. Remote calls are made without holding mu;
// their continuations re-lock and let the wizard discard stale results.
type WizardSession struct {
	mu     sync.Mutex
	wizard *booking.Wizard
}

func NewWizardSession(w *booking.Wizard) *WizardSession {
	return &WizardSession{wizard: w}
}

func (s *WizardSession) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.UserID()
}

func (s *WizardSession) with(fn func(w *booking.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.wizard)
}
