package booking

import (
	"errors"

	"estate-booking/internal/pkg/errs"
)

// User-facing messages. They are returned verbatim to the browser.
const (
	MsgCheckOutBeforeCheckIn = "Check-out date must be after check-in date."
	MsgCheckFailed           = "Failed to check availability. Please retry."
	MsgCreateFailed          = "Failed to create booking."
)

var (
	ErrCheckOutBeforeCheckIn = errs.Mark(errors.New(MsgCheckOutBeforeCheckIn), errs.ErrValidation)
	ErrCheckInInPast         = errs.Mark(errors.New("Check-in date cannot be in the past."), errs.ErrValidation)
	ErrDatesRequired         = errs.Mark(errors.New("Please select check-in and check-out dates."), errs.ErrValidation)
	ErrInvalidGuestCount     = errs.Mark(errors.New("Number of guests is out of range."), errs.ErrValidation)
	ErrInspectionRequired    = errs.Mark(errors.New("Please select an inspection date and time."), errs.ErrValidation)
	ErrInspectionInPast      = errs.Mark(errors.New("Inspection date cannot be in the past."), errs.ErrValidation)
	ErrInvalidInspectionTime = errs.Mark(errors.New("Inspection time must be in HH:MM format."), errs.ErrValidation)
	ErrGuestInfoIncomplete   = errs.Mark(errors.New("Please provide your name, email and phone number."), errs.ErrValidation)

	ErrAvailabilityPending  = errs.Mark(errors.New("Availability check is still in progress."), errs.ErrInvalidTransition)
	ErrAvailabilityUnknown  = errs.Mark(errors.New("Availability has not been confirmed for the selected dates."), errs.ErrInvalidTransition)
	ErrDatesUnavailable     = errs.Mark(errors.New("The selected dates are not available."), errs.ErrConflict)
	ErrWrongStep            = errs.Mark(errors.New("This action is not available at the current step."), errs.ErrInvalidTransition)
	ErrWrongKind            = errs.Mark(errors.New("This action does not apply to this listing."), errs.ErrInvalidTransition)
	ErrTerminal             = errs.Mark(errors.New("The booking is already confirmed."), errs.ErrInvalidTransition)
	ErrNoPreviousStep       = errs.Mark(errors.New("Already at the first step."), errs.ErrInvalidTransition)
	ErrClosed               = errs.Mark(errors.New("The booking wizard was closed."), errs.ErrNotFound)
	ErrSubmissionInProgress = errs.Mark(errors.New("A booking submission is already in progress."), errs.ErrSubmissionInProgress)
)
