package usecase

import (
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type CheckView struct {
	State     booking.CheckState
	Message   string
	Conflicts []availability.Conflict
}

type SubmitView struct {
	State booking.SubmitState
	Error string
}

// WizardView is a consistent snapshot of a wizard taken under its lock. Use
// cases return it alongside recoverable errors so the caller can render the
// state the error left behind.
type WizardView struct {
	ID               uuid.UUID
	PropertyID       string
	PropertyTitle    string
	ListingType      string
	MaxGuests        int
	Kind             booking.Kind
	Step             booking.Step
	StepNumber       int
	Steps            []booking.Step
	Draft            booking.Draft
	Pricing          *pricing.Snapshot
	Check            CheckView
	Submit           SubmitView
	CanAdvance       bool
	Blocker          string
	Confirmation     *booking.Confirmation
	UnavailableDates []availability.Detail
	UpdatedAt        time.Time
}

func newWizardView(w *booking.Wizard, window *availability.Window) *WizardView {
	prop := w.Property()
	v := &WizardView{
		ID:            w.ID(),
		PropertyID:    prop.ID(),
		PropertyTitle: prop.Title(),
		ListingType:   prop.ListingType().String(),
		MaxGuests:     prop.MaxGuests(),
		Kind:          w.Kind(),
		Step:          w.Step(),
		StepNumber:    w.StepNumber(),
		Steps:         booking.Steps(w.Kind()),
		Draft:         w.Draft(),
		Check: CheckView{
			State:   w.CheckState(),
			Message: w.CheckMessage(),
		},
		Submit: SubmitView{
			State: w.SubmitState(),
			Error: w.SubmitError(),
		},
		Confirmation: w.Confirmation(),
		UpdatedAt:    w.UpdatedAt(),
	}
	if w.PricingReady() && !w.IsTerminal() {
		p := w.Pricing()
		v.Pricing = &p
	}
	if r := w.LatestCheck(); r != nil && !r.IsAvailable {
		v.Check.Conflicts = append([]availability.Conflict(nil), r.Conflicts...)
	}
	if !w.IsTerminal() {
		if err := w.CanAdvance(); err != nil {
			v.Blocker = err.Error()
		} else {
			v.CanAdvance = true
		}
	}
	if window != nil && w.Kind() == booking.KindStay && !w.IsTerminal() {
		v.UnavailableDates = window.Details()
	}
	return v
}
