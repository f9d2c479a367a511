package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/calendar"
)

// FetchUnavailable loads the unavailable dates of a property within [start, end].
func (c *Client) FetchUnavailable(ctx context.Context, propertyID string, start, end calendar.Date) (*availability.Window, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())

	resp, err := c.do(ctx, call{
		op:         "fetch_unavailable",
		method:     http.MethodGet,
		path:       "/availability/unavailable/" + url.PathEscape(propertyID) + "?" + q.Encode(),
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}

	var body unavailableResponse
	if err := decode("fetch_unavailable", resp, &body); err != nil {
		return nil, err
	}
	return body.toWindow(propertyID, start, end, time.Now()), nil
}

// CheckRange asks the server whether the nights of [checkIn, checkOut) are free.
func (c *Client) CheckRange(ctx context.Context, propertyID string, checkIn, checkOut calendar.Date) (*availability.CheckResult, error) {
	resp, err := c.do(ctx, call{
		op:         "check_range",
		method:     http.MethodPost,
		path:       "/availability/check/" + url.PathEscape(propertyID),
		body:       checkRequest{CheckInDate: checkIn, CheckOutDate: checkOut},
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}

	var body checkResponse
	if err := decode("check_range", resp, &body); err != nil {
		return nil, err
	}
	return body.toResult(availability.Pair{CheckIn: checkIn, CheckOut: checkOut}), nil
}
