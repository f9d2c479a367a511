//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/infra/marketplace"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase"
	"estate-booking/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func createdRecord() booking.Record {
	return booking.Record{
		ID:         "bk-1",
		PropertyID: "prop-1",
		Status:     "pending",
		CheckIn:    d("2024-01-05"),
		CheckOut:   d("2024-01-08"),
		TotalPrice: pricing.Naira(69000),
		CreatedAt:  time.Date(2024, time.January, 1, 9, 1, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *WizardUseCaseTestSuite) TestSubmit() {
	s.Run("success: rechecks, creates and announces the booking", func() {
		id := s.atPayment()
		var sent booking.Request
		gomock.InOrder(
			s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil),
			s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req booking.Request) (booking.Record, error) {
					sent = req
					return createdRecord(), nil
				}),
			s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, evt booking.CreatedEvent) error {
					s.NoError(ctx.Err())
					s.Equal("bk-1", evt.BookingID)
					s.Equal("user-1", evt.UserID)
					s.Equal("ada@example.com", evt.GuestEmail)
					s.Equal(d("2024-01-05"), evt.CheckIn)
					return nil
				}),
		)

		got, err := s.uc.Submit(s.ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StepConfirmation, got.Step)
		s.Equal(booking.SubmitSucceeded, got.Submit.State)
		s.Require().NotNil(got.Confirmation)
		s.Equal("bk-1", got.Confirmation.BookingID)
		s.Nil(got.Pricing)

		stay, ok := sent.(booking.StayRequest)
		s.Require().True(ok)
		s.Equal("shortlet", stay.BookingType())
		s.Equal(3, stay.Nights)
		s.Equal(pricing.Naira(69000), stay.Amounts().TotalPrice)
		s.NotEqual(uuid.Nil, stay.IdempotencyKey())
	})

	s.Run("error: confirmed wizard cannot be submitted again", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(createdRecord(), nil)
		s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)
		_, err := s.uc.Submit(s.ctx, id)
		s.Require().NoError(err)

		_, err = s.uc.Submit(s.ctx, id)

		s.ErrorIs(err, booking.ErrTerminal)
	})

	s.Run("error: final recheck conflict aborts and keeps the draft", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{
			Conflicts: []availability.Conflict{{Date: d("2024-01-06"), Reason: availability.ReasonBooking}},
		}, nil)

		got, err := s.uc.Submit(s.ctx, id)

		s.ErrorIs(err, booking.ErrDatesUnavailable)
		s.Equal(booking.StepDateSelection, got.Step)
		s.Equal(booking.CheckConflict, got.Check.State)
		s.Equal(d("2024-01-05"), got.Draft.CheckIn)
		s.Equal(d("2024-01-08"), got.Draft.CheckOut)
		s.Equal("Ada Obi", got.Draft.Guest.Name)
		s.Contains(got.Submit.Error, "2024-01-06")
		s.False(got.CanAdvance)
	})

	s.Run("error: final recheck failure never creates a booking", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{}, networkErr())

		got, err := s.uc.Submit(s.ctx, id)

		s.True(errs.Is(err, usecase.ErrCheckFailed))
		s.Equal(booking.StepPayment, got.Step)
		s.Equal(booking.MsgCheckFailed, got.Submit.Error)
	})

	s.Run("error: server message is shown verbatim and the retry reuses the key", func() {
		id := s.atPayment()
		rejected := errs.Mark(marketplace.ClientError{
			Kind:    marketplace.KindRejected,
			Status:  422,
			Message: "Property is not accepting bookings for these dates",
		}, errs.ErrValidation)

		var keys []uuid.UUID
		capture := func(_ context.Context, req booking.Request) {
			keys = append(keys, req.IdempotencyKey())
		}
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil).Times(2)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Do(capture).Return(booking.Record{}, rejected)

		got, err := s.uc.Submit(s.ctx, id)

		var subErr usecase.SubmissionError
		s.Require().True(errs.As(err, &subErr))
		s.Equal("Property is not accepting bookings for these dates", subErr.Message)
		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal("Property is not accepting bookings for these dates", got.Submit.Error)
		s.Equal(booking.SubmitIdle, got.Submit.State)
		s.Equal(booking.StepPayment, got.Step)

		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Do(capture).Return(createdRecord(), nil)
		s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

		got, err = s.uc.Submit(s.ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StepConfirmation, got.Step)
		s.Require().Len(keys, 2)
		s.Equal(keys[0], keys[1])
	})

	s.Run("success: a draft changed after a failure is sent with a new key", func() {
		id := s.atPayment()
		var keys []uuid.UUID
		capture := func(_ context.Context, req booking.Request) {
			keys = append(keys, req.IdempotencyKey())
		}
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil).Times(2)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Do(capture).Return(booking.Record{}, networkErr())

		_, err := s.uc.Submit(s.ctx, id)
		s.Require().Error(err)

		_, err = s.uc.SetGuests(s.ctx, id, 2)
		s.Require().NoError(err)

		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Do(capture).Return(createdRecord(), nil)
		s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

		_, err = s.uc.Submit(s.ctx, id)

		s.Require().NoError(err)
		s.Require().Len(keys, 2)
		s.NotEqual(keys[0], keys[1])
	})

	s.Run("error: draft edits are rejected while the booking is being created", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req booking.Request) (booking.Record, error) {
				v, err := s.uc.SetGuests(s.ctx, id, 2)
				s.ErrorIs(err, booking.ErrSubmissionInProgress)
				s.Require().NotNil(v)
				s.Equal(1, v.Draft.Guests)

				_, err = s.uc.ApplyCoupon(s.ctx, id, "SAVE10")
				s.ErrorIs(err, booking.ErrSubmissionInProgress)
				_, err = s.uc.SetGuestInfo(s.ctx, id, usecase.GuestInfoParams{Name: "Chidi", Email: "chidi@example.com", Phone: "08031234567"})
				s.ErrorIs(err, booking.ErrSubmissionInProgress)
				return createdRecord(), nil
			})
		s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.uc.Submit(s.ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StepConfirmation, got.Step)
	})

	s.Run("error: failure without a server message uses the generic text", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(booking.Record{}, errs.Mark(marketplace.ClientError{Kind: marketplace.KindServer, Status: 500}, errs.ErrServer))

		got, err := s.uc.Submit(s.ctx, id)

		s.EqualError(err, booking.MsgCreateFailed)
		s.True(errs.Is(err, errs.ErrServer))
		s.Equal(booking.MsgCreateFailed, got.Submit.Error)
	})

	s.Run("error: server-side conflict on create returns to date selection", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(booking.Record{}, errs.Mark(marketplace.ClientError{Kind: marketplace.KindConflict, Status: 409}, errs.ErrConflict))

		got, err := s.uc.Submit(s.ctx, id)

		s.ErrorIs(err, booking.ErrDatesUnavailable)
		s.Equal(booking.StepDateSelection, got.Step)
		s.Equal(d("2024-01-05"), got.Draft.CheckIn)
	})

	s.Run("error: expired session discards the wizard", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Record{}, authErr())

		got, err := s.uc.Submit(s.ctx, id)

		s.Nil(got)
		s.True(errs.Is(err, errs.ErrAuth))
		_, err = s.uc.Get(s.ctx, id)
		s.ErrorIs(err, usecase.ErrWizardNotFound)
	})

	s.Run("success: lost event does not fail the booking", func() {
		id := s.atPayment()
		s.expectCheck("2024-01-05", "2024-01-08", availability.CheckResult{IsAvailable: true}, nil)
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(createdRecord(), nil)
		s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		got, err := s.uc.Submit(s.ctx, id)

		s.Require().NoError(err)
		s.Equal(booking.StepConfirmation, got.Step)
	})

	s.Run("error: submit before the payment step", func() {
		v := s.openStay()

		_, err := s.uc.Submit(s.ctx, v.ID)

		s.ErrorIs(err, booking.ErrWrongStep)
	})
}

// ================================================================================
// TestSubmitInspection
// ================================================================================

func (s *WizardUseCaseTestSuite) TestSubmitInspection() {
	s.mockProfile.EXPECT().GetProfile(gomock.Any()).Return(builder.NewProfileBuilder().MustBuild(), nil)
	s.mockProperty.EXPECT().GetProperty(gomock.Any(), "prop-1").
		Return(builder.NewPropertyBuilder().AsRental(pricing.Naira(5000)).MustBuild(), nil)

	v, err := s.uc.Open(s.ctx, "prop-1")
	s.Require().NoError(err)

	v, err = s.uc.SetInspection(s.ctx, v.ID, usecase.InspectionParams{
		Date: d("2024-01-03"),
		Time: "14:30",
		Guest: usecase.GuestInfoParams{
			Name:  "Ada Obi",
			Email: "ada@example.com",
			Phone: "+2348012345678",
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(v.Pricing)
	s.Equal(pricing.Naira(5750), v.Pricing.TotalPrice)
	s.True(v.CanAdvance)

	// Inspections are never range-checked.
	s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req booking.Request) (booking.Record, error) {
			insp, ok := req.(booking.InspectionRequest)
			s.Require().True(ok)
			s.Equal("inspection", insp.BookingType())
			s.Equal("14:30", insp.Time)
			return booking.Record{ID: "bk-2", Status: "pending", TotalPrice: pricing.Naira(5750)}, nil
		})
	s.mockEvents.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	v, err = s.uc.Submit(s.ctx, v.ID)

	s.Require().NoError(err)
	s.Equal("bk-2", v.Confirmation.BookingID)
}
