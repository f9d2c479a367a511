package marketplace

import (
	"context"
	"net/http"

	"estate-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// CreateBooking posts the request with its Idempotency-Key, which makes the
// call safe to retry.
func (c *Client) CreateBooking(ctx context.Context, req booking.Request) (booking.Record, error) {
	cl := call{
		op:     "create_booking",
		method: http.MethodPost,
		path:   "/bookings",
		body:   newCreateBookingRequest(req),
	}
	if key := req.IdempotencyKey(); key != uuid.Nil {
		cl.headers = map[string]string{"Idempotency-Key": key.String()}
		cl.idempotent = true
	}

	resp, err := c.do(ctx, cl)
	if err != nil {
		return booking.Record{}, err
	}

	var body bookingRecord
	if err := decode("create_booking", resp, &body); err != nil {
		return booking.Record{}, err
	}
	return body.toDomain(), nil
}

func (c *Client) ListMyBookings(ctx context.Context) ([]booking.Record, error) {
	resp, err := c.do(ctx, call{
		op:         "list_my_bookings",
		method:     http.MethodGet,
		path:       "/bookings/me",
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}

	var body []bookingRecord
	if err := decode("list_my_bookings", resp, &body); err != nil {
		return nil, err
	}
	out := make([]booking.Record, 0, len(body))
	for _, b := range body {
		out = append(out, b.toDomain())
	}
	return out, nil
}
