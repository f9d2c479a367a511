package usecase

import (
	"context"
	"log/slog"
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
)

// ConflictValidator decides whether a selected date pair is bookable. The
// server's range check is authoritative; the cached window only feeds hints.
type ConflictValidator struct {
	api      AvailabilityAPI
	recorder Recorder
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewConflictValidator(api AvailabilityAPI, recorder Recorder, clk clock.Clock, cfg config.WizardConfig, logger *slog.Logger) *ConflictValidator {
	return &ConflictValidator{
		api:      api,
		recorder: recorder,
		clock:    clk,
		loc:      cfg.Location(),
		logger:   logger,
	}
}

// Validate selects the pair on the wizard and resolves its check. An invalid
// pair fails locally without a network call. A conflict is returned as
// booking.ErrDatesUnavailable and a failed check as ErrCheckFailed.
func (v *ConflictValidator) Validate(ctx context.Context, s *WizardSession, checkIn, checkOut calendar.Date) error {
	var (
		ticket     booking.CheckTicket
		propertyID string
	)
	err := s.with(func(w *booking.Wizard) error {
		now := v.clock.Now()
		var err error
		ticket, err = w.SelectDates(checkIn, checkOut, calendar.Today(now, v.loc), now)
		propertyID = w.Property().ID()
		return err
	})
	if err != nil {
		return err
	}
	return v.resolve(ctx, s, propertyID, ticket)
}

// Retry re-runs the check for the pair already on the draft.
func (v *ConflictValidator) Retry(ctx context.Context, s *WizardSession) error {
	var (
		ticket     booking.CheckTicket
		propertyID string
	)
	err := s.with(func(w *booking.Wizard) error {
		now := v.clock.Now()
		var err error
		ticket, err = w.RetryCheck(calendar.Today(now, v.loc), now)
		propertyID = w.Property().ID()
		return err
	})
	if err != nil {
		return err
	}
	return v.resolve(ctx, s, propertyID, ticket)
}

func (v *ConflictValidator) resolve(ctx context.Context, s *WizardSession, propertyID string, ticket booking.CheckTicket) error {
	res, checkErr := v.api.CheckRange(ctx, propertyID, ticket.Pair.CheckIn, ticket.Pair.CheckOut)

	var applied bool
	_ = s.with(func(w *booking.Wizard) error {
		if checkErr != nil {
			applied = w.ApplyCheckFailure(ticket, v.clock.Now())
			return nil
		}
		applied = w.ApplyCheckResult(ticket, *res, v.clock.Now())
		return nil
	})

	if !applied {
		v.logger.Debug("Discarded stale availability check",
			slog.String("property_id", propertyID),
			slog.String("pair", ticket.Pair.String()),
			slog.Uint64("seq", ticket.Seq))
		v.recorder.AvailabilityCheck("stale")
		if checkErr != nil && errs.Is(checkErr, errs.ErrAuth) {
			return checkErr
		}
		return nil
	}

	if checkErr != nil {
		v.recorder.AvailabilityCheck("failed")
		if errs.Is(checkErr, errs.ErrAuth) {
			return checkErr
		}
		v.logger.Warn("Availability check failed; progression blocked",
			slog.String("property_id", propertyID),
			slog.String("pair", ticket.Pair.String()),
			slog.Any("error", checkErr))
		return errs.Mark(errs.Wrap(checkErr, booking.MsgCheckFailed), ErrCheckFailed)
	}
	if !res.IsAvailable {
		v.recorder.AvailabilityCheck("conflict")
		return conflictError(*res)
	}
	v.recorder.AvailabilityCheck("available")
	return nil
}

// Recheck asks the server once more, bypassing any earlier result. It does
// not touch the wizard.
func (v *ConflictValidator) Recheck(ctx context.Context, propertyID string, pair availability.Pair) (*availability.CheckResult, error) {
	res, err := v.api.CheckRange(ctx, propertyID, pair.CheckIn, pair.CheckOut)
	if err != nil {
		v.recorder.AvailabilityCheck("failed")
		return nil, err
	}
	if res.IsAvailable {
		v.recorder.AvailabilityCheck("available")
	} else {
		v.recorder.AvailabilityCheck("conflict")
	}
	return res, nil
}

// ConflictError is ErrDatesUnavailable with the server's conflicting dates.
type ConflictError struct {
	Result availability.CheckResult
}

func (e ConflictError) Error() string {
	return e.Result.Message()
}

func (e ConflictError) Unwrap() error {
	return booking.ErrDatesUnavailable
}

func conflictError(r availability.CheckResult) error {
	return ConflictError{Result: r}
}
