//go:build unit || e2e

package builder

import (
	"time"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/usecase"

	"github.com/google/uuid"
)

// FixedNow is the reference instant of wizard tests; "today" is 2024-01-01 in UTC.
var FixedNow = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

type WizardBuilder struct {
	ID       uuid.UUID
	Profile  *ProfileBuilder
	Property *PropertyBuilder
	Rates    pricing.Rates
	Now      time.Time
}

func NewWizardBuilder() *WizardBuilder {
	return &WizardBuilder{
		ID:       uuid.New(),
		Profile:  NewProfileBuilder(),
		Property: NewPropertyBuilder(),
		Rates:    pricing.DefaultRates(),
		Now:      FixedNow,
	}
}

func (w *WizardBuilder) With(mutate func(*WizardBuilder)) *WizardBuilder {
	mutate(w)
	return w
}

// Build methods
func (w *WizardBuilder) BuildDomain() (*booking.Wizard, error) {
	profile, err := w.Profile.BuildDomain()
	if err != nil {
		return nil, err
	}
	prop, err := w.Property.BuildDomain()
	if err != nil {
		return nil, err
	}
	calc, err := pricing.NewCalculator(w.Rates)
	if err != nil {
		return nil, err
	}
	return booking.NewWizard(w.ID, profile, prop, calc, w.Now), nil
}

func (w *WizardBuilder) MustBuild() *booking.Wizard {
	wiz, err := w.BuildDomain()
	if err != nil {
		panic(err)
	}
	return wiz
}

// BuildView renders a fresh wizard the way the use cases hand it to handlers.
func (w *WizardBuilder) BuildView() *usecase.WizardView {
	wiz := w.MustBuild()
	prop := wiz.Property()
	return &usecase.WizardView{
		ID:            wiz.ID(),
		PropertyID:    prop.ID(),
		PropertyTitle: prop.Title(),
		ListingType:   prop.ListingType().String(),
		MaxGuests:     prop.MaxGuests(),
		Kind:          wiz.Kind(),
		Step:          wiz.Step(),
		StepNumber:    wiz.StepNumber(),
		Steps:         booking.Steps(wiz.Kind()),
		Draft:         wiz.Draft(),
		Check:         usecase.CheckView{State: wiz.CheckState()},
		Submit:        usecase.SubmitView{State: wiz.SubmitState()},
		UpdatedAt:     wiz.UpdatedAt(),
	}
}

func (w *WizardBuilder) BuildSelectDatesRequestDTO() map[string]any {
	return map[string]any{
		"checkInDate":  "2024-01-05",
		"checkOutDate": "2024-01-08",
	}
}

func (w *WizardBuilder) BuildGuestInfoRequestDTO() map[string]any {
	return map[string]any{
		"guestName":       "Ada Obi",
		"guestEmail":      "ada@example.com",
		"guestPhone":      "+2348012345678",
		"specialRequests": "",
	}
}
