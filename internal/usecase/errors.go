package usecase

import (
	"errors"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/coupon"
	"estate-booking/internal/pkg/errs"
)

var (
	ErrAuthRequired       = errs.Mark(errors.New("Please sign in to continue."), errs.ErrAuth)
	ErrProfileUnavailable = errs.Mark(errors.New("Your profile could not be loaded. Please sign in again."), errs.ErrAuth)
	ErrWizardNotFound     = errs.Mark(errors.New("Booking wizard not found."), errs.ErrNotFound)
	ErrPropertyNotFound   = errs.Mark(errors.New("Property not found."), errs.ErrNotFound)
	ErrCheckFailed        = errs.Mark(errors.New(booking.MsgCheckFailed), errs.ErrNetwork)
	ErrInvalidCoupon      = errs.Mark(errors.New(coupon.InvalidCouponMessage), errs.ErrCoupon)
	ErrInvalidDateRange   = errs.Mark(errors.New("The requested date range is invalid."), errs.ErrValidation)
)

// SubmissionError carries the message shown to the user after a failed
// booking creation; it is the server's own text when one was returned.
type SubmissionError struct {
	Message string
	err     error
}

func (e SubmissionError) Error() string {
	return e.Message
}

func (e SubmissionError) Unwrap() error {
	return e.err
}

func newSubmissionError(msg string, cause error) error {
	if msg == "" {
		msg = booking.MsgCreateFailed
	}
	category := errs.ErrServer
	switch {
	case errs.Is(cause, errs.ErrNetwork):
		category = errs.ErrNetwork
	case errs.Is(cause, errs.ErrValidation):
		category = errs.ErrValidation
	}
	return errs.Mark(SubmissionError{Message: msg, err: cause}, category)
}
