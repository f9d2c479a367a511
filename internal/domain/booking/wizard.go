package booking

import (
	"strings"
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/coupon"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/domain/property"
	"estate-booking/internal/domain/user"

	"github.com/google/uuid"
)

// CheckTicket identifies one availability check. A result is applied only
// when its ticket still matches the wizard's latest check.
type CheckTicket struct {
	Pair availability.Pair
	Seq  uint64
}

type checkStatus struct {
	state   CheckState
	ticket  CheckTicket
	result  *availability.CheckResult
	message string
	err     error
}

// Confirmation is what remains of a wizard after the booking was created.
type Confirmation struct {
	BookingID  string
	Status     string
	TotalPrice pricing.Money
	CreatedAt  time.Time
}

// Wizard is the booking state machine for one booking attempt. It is not
// safe for concurrent use; callers serialize access per wizard.
type Wizard struct {
	id             uuid.UUID
	userID         string
	property       *property.Property
	kind           Kind
	step           Step
	draft          Draft
	coupon         *coupon.Coupon
	pricing        pricing.Snapshot
	calc           *pricing.Calculator
	check          checkStatus
	submit         SubmitState
	submitError    string
	idempotencyKey uuid.UUID
	confirmation   *Confirmation
	closed         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewWizard starts at the first step of the listing's flow with guest-info
// defaults taken from the profile.
func NewWizard(id uuid.UUID, profile *user.Profile, prop *property.Property, calc *pricing.Calculator, now time.Time) *Wizard {
	kind := KindOf(prop.ListingType())
	w := &Wizard{
		id:       id,
		userID:   profile.ID(),
		property: prop,
		kind:     kind,
		step:     flows[kind][0],
		draft: Draft{
			Guests: 1,
			Guest: GuestInfo{
				Name:  profile.FullName(),
				Email: profile.Email(),
				Phone: profile.Phone(),
			},
		},
		calc:      calc,
		check:     checkStatus{state: CheckIdle},
		submit:    SubmitIdle,
		createdAt: now,
		updatedAt: now,
	}
	w.reprice()
	return w
}

func (w *Wizard) ID() uuid.UUID                          { return w.id }
func (w *Wizard) UserID() string                         { return w.userID }
func (w *Wizard) Property() *property.Property           { return w.property }
func (w *Wizard) Kind() Kind                             { return w.kind }
func (w *Wizard) Step() Step                             { return w.step }
func (w *Wizard) Draft() Draft                           { return w.draft }
func (w *Wizard) Pricing() pricing.Snapshot              { return w.pricing }
func (w *Wizard) CheckState() CheckState                 { return w.check.state }
func (w *Wizard) CheckMessage() string                   { return w.check.message }
func (w *Wizard) SubmitState() SubmitState               { return w.submit }
func (w *Wizard) SubmitError() string                    { return w.submitError }
func (w *Wizard) Confirmation() *Confirmation            { return w.confirmation }
func (w *Wizard) IsClosed() bool                         { return w.closed }
func (w *Wizard) IdempotencyKey() uuid.UUID              { return w.idempotencyKey }
func (w *Wizard) CreatedAt() time.Time                   { return w.createdAt }
func (w *Wizard) UpdatedAt() time.Time                   { return w.updatedAt }
func (w *Wizard) IsTerminal() bool                       { return w.step == StepConfirmation }
func (w *Wizard) LatestCheck() *availability.CheckResult { return w.check.result }

// StepNumber is 1-based within the wizard's own flow.
func (w *Wizard) StepNumber() int {
	for i, s := range flows[w.kind] {
		if s == w.step {
			return i + 1
		}
	}
	return 0
}

// PricingReady is false while a stay has no valid night count.
func (w *Wizard) PricingReady() bool {
	if w.kind == KindStay {
		return w.draft.Nights >= 1
	}
	return true
}

func (w *Wizard) guard(now time.Time) error {
	if w.closed {
		return ErrClosed
	}
	if w.IsTerminal() {
		return ErrTerminal
	}
	w.updatedAt = now
	return nil
}

// SelectDates stores the pair and, when it is well ordered, opens a new
// availability check whose ticket the caller must resolve.
func (w *Wizard) SelectDates(checkIn, checkOut, today calendar.Date, now time.Time) (CheckTicket, error) {
	if err := w.guard(now); err != nil {
		return CheckTicket{}, err
	}
	if w.kind != KindStay {
		return CheckTicket{}, ErrWrongKind
	}
	if w.step != StepDateSelection {
		return CheckTicket{}, ErrWrongStep
	}

	if checkIn != w.draft.CheckIn || checkOut != w.draft.CheckOut {
		w.payloadChanged()
	}
	w.draft.CheckIn = checkIn
	w.draft.CheckOut = checkOut
	next := w.check.ticket.Seq + 1

	if err := ValidateStay(checkIn, checkOut, today); err != nil {
		w.draft.Nights = 0
		w.check = checkStatus{
			state:   CheckIdle,
			ticket:  CheckTicket{Seq: next},
			message: err.Error(),
			err:     err,
		}
		w.reprice()
		return CheckTicket{}, err
	}

	w.draft.Nights = NightsBetween(checkIn, checkOut)
	ticket := CheckTicket{
		Pair: availability.Pair{CheckIn: checkIn, CheckOut: checkOut},
		Seq:  next,
	}
	w.check = checkStatus{state: CheckInFlight, ticket: ticket}
	w.reprice()
	return ticket, nil
}

func (w *Wizard) isCurrent(t CheckTicket) bool {
	return !w.closed &&
		w.check.state == CheckInFlight &&
		w.check.ticket == t &&
		w.draft.CheckIn == t.Pair.CheckIn &&
		w.draft.CheckOut == t.Pair.CheckOut
}

// ApplyCheckResult records the server's answer. It returns false and changes
// nothing when the ticket is stale.
func (w *Wizard) ApplyCheckResult(t CheckTicket, result availability.CheckResult, now time.Time) bool {
	if !w.isCurrent(t) {
		return false
	}
	result.Pair = t.Pair
	w.check.result = &result
	if result.IsAvailable {
		w.check.state = CheckPassed
		w.check.message = ""
	} else {
		w.check.state = CheckConflict
		w.check.message = result.Message()
	}
	w.updatedAt = now
	return true
}

// ApplyCheckFailure fails closed: progression stays blocked until a retry passes.
func (w *Wizard) ApplyCheckFailure(t CheckTicket, now time.Time) bool {
	if !w.isCurrent(t) {
		return false
	}
	w.check.state = CheckFailed
	w.check.result = nil
	w.check.message = MsgCheckFailed
	w.updatedAt = now
	return true
}

// RetryCheck reopens a check for the current pair after a failure.
func (w *Wizard) RetryCheck(today calendar.Date, now time.Time) (CheckTicket, error) {
	return w.SelectDates(w.draft.CheckIn, w.draft.CheckOut, today, now)
}

func (w *Wizard) SetGuests(n int, now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.kind != KindStay {
		return ErrWrongKind
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	if n < 1 || (w.property.MaxGuests() > 0 && n > w.property.MaxGuests()) {
		return ErrInvalidGuestCount
	}
	if n != w.draft.Guests {
		w.payloadChanged()
	}
	w.draft.Guests = n
	return nil
}

func (w *Wizard) SetGuestInfo(g GuestInfo, now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	g = g.normalized()
	if err := g.Validate(); err != nil {
		return err
	}
	if g != w.draft.Guest {
		w.payloadChanged()
	}
	w.draft.Guest = g
	return nil
}

// SetInspection stores the viewing slot together with the contact fields.
func (w *Wizard) SetInspection(i Inspection, g GuestInfo, today calendar.Date, now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.kind != KindInspection {
		return ErrWrongKind
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	i.Time = strings.TrimSpace(i.Time)
	if err := ValidateInspection(i, today); err != nil {
		return err
	}
	g = g.normalized()
	if err := g.Validate(); err != nil {
		return err
	}
	if i != w.draft.Inspection || g != w.draft.Guest {
		w.payloadChanged()
	}
	w.draft.Inspection = i
	w.draft.Guest = g
	return nil
}

// ApplyCoupon replaces any applied coupon. Resolution errors are the caller's
// to report; they never reach the wizard, so the draft stays untouched.
func (w *Wizard) ApplyCoupon(c *coupon.Coupon, now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	if c.Code() != w.draft.CouponCode {
		w.payloadChanged()
	}
	w.coupon = c
	w.draft.CouponCode = c.Code()
	w.reprice()
	return nil
}

// RemoveCoupon does not re-check the selected dates.
func (w *Wizard) RemoveCoupon(now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	if w.draft.CouponCode != "" {
		w.payloadChanged()
	}
	w.coupon = nil
	w.draft.CouponCode = ""
	w.reprice()
	return nil
}

// payloadChanged drops the idempotency key. A retry keeps its key only while
// the request it would send is unchanged.
func (w *Wizard) payloadChanged() {
	w.idempotencyKey = uuid.Nil
}

func (w *Wizard) reprice() {
	var discount pricing.Discount
	if w.coupon != nil {
		discount = w.coupon
	}
	if w.kind == KindStay {
		w.pricing = w.calc.Quote(w.property.NightlyRate(), w.draft.Nights, discount)
		return
	}
	w.pricing = w.calc.Quote(w.property.InspectionFee(), 1, discount)
}

// CanAdvance returns nil when the current step's precondition holds.
func (w *Wizard) CanAdvance() error {
	if w.closed {
		return ErrClosed
	}
	switch w.step {
	case StepDateSelection:
		if !w.draft.HasDates() {
			return ErrDatesRequired
		}
		switch w.check.state {
		case CheckInFlight:
			return ErrAvailabilityPending
		case CheckConflict:
			return ErrDatesUnavailable
		case CheckPassed:
			if w.check.ticket.Pair.CheckIn != w.draft.CheckIn || w.check.ticket.Pair.CheckOut != w.draft.CheckOut {
				return ErrAvailabilityUnknown
			}
			if w.draft.Nights < 1 {
				return ErrCheckOutBeforeCheckIn
			}
			return nil
		default:
			if w.check.err != nil {
				return w.check.err
			}
			return ErrAvailabilityUnknown
		}
	case StepGuestInfo:
		return w.checkGuest()
	case StepViewingRequest:
		if !w.draft.Inspection.IsSet() {
			return ErrInspectionRequired
		}
		return w.checkGuest()
	case StepPayment:
		return nil
	default:
		return ErrTerminal
	}
}

// checkGuest applies the same format rules to profile defaults as to typed-in values.
func (w *Wizard) checkGuest() error {
	if !w.draft.Guest.IsComplete() {
		return ErrGuestInfoIncomplete
	}
	return w.draft.Guest.Validate()
}

// Advance moves one step forward. The last step before confirmation is left
// only through a successful submission.
func (w *Wizard) Advance(now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if err := w.CanAdvance(); err != nil {
		return err
	}
	next, ok := w.neighbour(1)
	if !ok || next == StepConfirmation {
		return ErrWrongStep
	}
	w.step = next
	return nil
}

// Back is allowed everywhere except the first step and confirmation.
func (w *Wizard) Back(now time.Time) error {
	if err := w.guard(now); err != nil {
		return err
	}
	if w.submit == SubmitInFlight {
		return ErrSubmissionInProgress
	}
	prev, ok := w.neighbour(-1)
	if !ok {
		return ErrNoPreviousStep
	}
	w.step = prev
	return nil
}

func (w *Wizard) neighbour(delta int) (Step, bool) {
	steps := flows[w.kind]
	for i, s := range steps {
		if s != w.step {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(steps) {
			return "", false
		}
		return steps[j], true
	}
	return "", false
}

func (w *Wizard) isSubmitStep() bool {
	return (w.kind == KindStay && w.step == StepPayment) ||
		(w.kind == KindInspection && w.step == StepViewingRequest)
}

// BeginSubmit claims the single submission slot and returns the payload built
// from the current draft and pricing.
func (w *Wizard) BeginSubmit(now time.Time) (Request, error) {
	if err := w.guard(now); err != nil {
		return nil, err
	}
	if w.submit == SubmitInFlight {
		return nil, ErrSubmissionInProgress
	}
	if !w.isSubmitStep() {
		return nil, ErrWrongStep
	}
	if w.kind == KindStay {
		if !w.draft.HasDates() || w.draft.Nights < 1 {
			return nil, ErrDatesRequired
		}
		if err := w.checkGuest(); err != nil {
			return nil, err
		}
	} else if err := w.CanAdvance(); err != nil {
		return nil, err
	}

	if w.idempotencyKey == uuid.Nil {
		w.idempotencyKey = uuid.New()
	}
	w.submit = SubmitInFlight
	w.submitError = ""
	return w.buildRequest(), nil
}

// SubmissionConflicted routes the user back to date selection with the fresh
// conflict. The draft is kept so only the dates need to change; the next
// submission carries new dates and therefore a new idempotency key.
func (w *Wizard) SubmissionConflicted(result availability.CheckResult, now time.Time) {
	if w.closed {
		return
	}
	pair := availability.Pair{CheckIn: w.draft.CheckIn, CheckOut: w.draft.CheckOut}
	result.Pair = pair
	w.submit = SubmitIdle
	w.submitError = result.Message()
	w.idempotencyKey = uuid.Nil
	w.step = StepDateSelection
	w.check = checkStatus{
		state:   CheckConflict,
		ticket:  CheckTicket{Pair: pair, Seq: w.check.ticket.Seq + 1},
		result:  &result,
		message: result.Message(),
	}
	w.updatedAt = now
}

// SubmissionFailed keeps the draft and the idempotency key so a
// retry cannot create a second booking.
func (w *Wizard) SubmissionFailed(message string, now time.Time) {
	if w.closed {
		return
	}
	if strings.TrimSpace(message) == "" {
		message = MsgCreateFailed
	}
	w.submit = SubmitIdle
	w.submitError = message
	w.updatedAt = now
}

// SubmissionSucceeded discards the draft and enters the terminal step.
func (w *Wizard) SubmissionSucceeded(c Confirmation, now time.Time) {
	w.submit = SubmitSucceeded
	w.submitError = ""
	w.step = StepConfirmation
	w.confirmation = &c
	w.draft = Draft{}
	w.coupon = nil
	w.check = checkStatus{state: CheckIdle}
	w.updatedAt = now
}

// Close abandons the wizard; late continuations find it closed and drop their results.
func (w *Wizard) Close(now time.Time) {
	w.closed = true
	w.draft = Draft{}
	w.coupon = nil
	w.submit = SubmitIdle
	w.updatedAt = now
}
