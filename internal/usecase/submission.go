package usecase

import (
	"context"
	"log/slog"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/clock"
	"estate-booking/internal/pkg/errs"
)

// ProfileLoader returns the caller's profile, fetching it at most once.
type ProfileLoader func(ctx context.Context, userID string) (*user.Profile, error)

// SubmissionController performs the final step of a wizard: a fresh range
// check for stays, then the create call.
type SubmissionController struct {
	bookings  BookingAPI
	validator *ConflictValidator
	publisher EventPublisher
	recorder  Recorder
	clock     clock.Clock
	logger    *slog.Logger
}

func NewSubmissionController(
	bookings BookingAPI,
	validator *ConflictValidator,
	publisher EventPublisher,
	recorder Recorder,
	clk clock.Clock,
	logger *slog.Logger,
) *SubmissionController {
	return &SubmissionController{
		bookings:  bookings,
		validator: validator,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
		logger:    logger,
	}
}

func (c *SubmissionController) Submit(ctx context.Context, ws *WizardSession, loadProfile ProfileLoader) error {
	userID := ws.UserID()
	if _, err := loadProfile(ctx, userID); err != nil {
		c.recorder.Submission("auth_failed")
		return err
	}

	var req booking.Request
	if err := ws.with(func(w *booking.Wizard) error {
		var err error
		req, err = w.BeginSubmit(c.clock.Now())
		return err
	}); err != nil {
		return err
	}

	// Never trust an earlier check result for the final decision.
	if stay, ok := req.(booking.StayRequest); ok {
		pair := availability.Pair{CheckIn: stay.CheckIn, CheckOut: stay.CheckOut}
		res, err := c.validator.Recheck(ctx, req.PropertyID(), pair)
		if err != nil {
			if errs.Is(err, errs.ErrAuth) {
				c.recorder.Submission("auth_failed")
				return err
			}
			c.fail(ws, booking.MsgCheckFailed)
			c.recorder.Submission("check_failed")
			c.logger.Warn("Final availability check failed", slog.String("pair", pair.String()), slog.Any("error", err))
			return errs.Mark(errs.Wrap(err, booking.MsgCheckFailed), ErrCheckFailed)
		}
		if !res.IsAvailable {
			c.conflicted(ws, *res)
			return conflictError(*res)
		}
	}

	rec, err := c.bookings.CreateBooking(ctx, req)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAuth):
			c.recorder.Submission("auth_failed")
			return err
		case errs.Is(err, errs.ErrConflict) && req.Kind() == booking.KindStay:
			res := availability.CheckResult{IsAvailable: false}
			c.conflicted(ws, res)
			return conflictError(res)
		}
		msg := serverMessage(err)
		c.fail(ws, msg)
		c.recorder.Submission("failed")
		c.logger.Error("Booking creation failed",
			slog.String("property_id", req.PropertyID()),
			slog.String("idempotency_key", req.IdempotencyKey().String()),
			slog.Any("error", err))
		return newSubmissionError(msg, err)
	}

	now := c.clock.Now()
	_ = ws.with(func(w *booking.Wizard) error {
		w.SubmissionSucceeded(rec.Confirmation(), now)
		return nil
	})
	c.recorder.Submission("succeeded")
	c.logger.Info("Booking created",
		slog.String("booking_id", rec.ID),
		slog.String("property_id", req.PropertyID()),
		slog.String("user_id", userID))

	// The booking exists; a lost event must not turn it into a failure.
	evt := booking.NewCreatedEvent(userID, req, rec, now)
	if err := c.publisher.PublishBookingCreated(context.WithoutCancel(ctx), evt); err != nil {
		c.logger.Error("Failed to publish booking event", slog.String("booking_id", rec.ID), slog.Any("error", err))
	}
	return nil
}

func (c *SubmissionController) fail(ws *WizardSession, msg string) {
	_ = ws.with(func(w *booking.Wizard) error {
		w.SubmissionFailed(msg, c.clock.Now())
		return nil
	})
}

func (c *SubmissionController) conflicted(ws *WizardSession, res availability.CheckResult) {
	_ = ws.with(func(w *booking.Wizard) error {
		w.SubmissionConflicted(res, c.clock.Now())
		return nil
	})
	c.recorder.Submission("conflict")
}

// serverMessage extracts the marketplace's own error text, if any.
func serverMessage(err error) string {
	var sm interface{ ServerMessage() string }
	if errs.As(err, &sm) {
		return sm.ServerMessage()
	}
	return ""
}
