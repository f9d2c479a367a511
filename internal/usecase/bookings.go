package usecase

import (
	"context"
	"sort"

	"estate-booking/internal/domain/booking"
	"estate-booking/internal/pkg/authctx"
)

type BookingQueries interface {
	ListMine(ctx context.Context) ([]booking.Record, error)
}

type bookingQueriesImpl struct {
	api BookingAPI
}

func NewBookingQueries(api BookingAPI) BookingQueries {
	return &bookingQueriesImpl{api: api}
}

// ListMine returns the caller's bookings, newest first.
func (q *bookingQueriesImpl) ListMine(ctx context.Context) ([]booking.Record, error) {
	if _, ok := authctx.FromContext(ctx); !ok {
		return nil, ErrAuthRequired
	}
	records, err := q.api.ListMyBookings(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}
