package booking

import "estate-booking/internal/domain/property"

// Kind is the closed set of booking flows.
type Kind string

const (
	// Shortlet and hotel stays: a date range priced per night.
	KindStay Kind = "stay"
	// Rent and sale listings: a scheduled viewing.
	KindInspection Kind = "inspection"
)

func KindOf(lt property.ListingType) Kind {
	if lt.IsDateRange() {
		return KindStay
	}
	return KindInspection
}

type Step string

const (
	StepDateSelection  Step = "date_selection"
	StepGuestInfo      Step = "guest_info"
	StepPayment        Step = "payment"
	StepViewingRequest Step = "viewing_request"
	StepConfirmation   Step = "confirmation"
)

func (s Step) String() string {
	return string(s)
}

var flows = map[Kind][]Step{
	KindStay:       {StepDateSelection, StepGuestInfo, StepPayment, StepConfirmation},
	KindInspection: {StepViewingRequest, StepConfirmation},
}

// Steps lists the wizard steps of kind in order.
func Steps(kind Kind) []Step {
	out := make([]Step, len(flows[kind]))
	copy(out, flows[kind])
	return out
}

// CheckState tracks the availability check of the current date pair.
type CheckState string

const (
	CheckIdle     CheckState = "idle"
	CheckInFlight CheckState = "checking"
	CheckPassed   CheckState = "available"
	CheckConflict CheckState = "conflict"
	CheckFailed   CheckState = "failed"
)

type SubmitState string

const (
	SubmitIdle      SubmitState = "idle"
	SubmitInFlight  SubmitState = "submitting"
	SubmitSucceeded SubmitState = "succeeded"
)
