package booking

import (
	"time"

	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
)

// Record is a booking as stored by the marketplace.
type Record struct {
	ID             string
	PropertyID     string
	PropertyTitle  string
	BookingType    string
	Status         string
	CheckIn        calendar.Date
	CheckOut       calendar.Date
	InspectionDate calendar.Date
	InspectionTime string
	TotalPrice     pricing.Money
	CreatedAt      time.Time
}

func (r Record) Confirmation() Confirmation {
	return Confirmation{
		BookingID:  r.ID,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt,
	}
}

// CreatedEvent is announced once per successfully created booking.
type CreatedEvent struct {
	BookingID      string
	UserID         string
	PropertyID     string
	BookingType    string
	Status         string
	GuestEmail     string
	CheckIn        calendar.Date
	CheckOut       calendar.Date
	InspectionDate calendar.Date
	InspectionTime string
	TotalPrice     pricing.Money
	OccurredAt     time.Time
}

func NewCreatedEvent(userID string, req Request, rec Record, now time.Time) CreatedEvent {
	evt := CreatedEvent{
		BookingID:   rec.ID,
		UserID:      userID,
		PropertyID:  req.PropertyID(),
		BookingType: req.BookingType(),
		Status:      rec.Status,
		GuestEmail:  req.Contact().Email,
		TotalPrice:  req.Amounts().TotalPrice,
		OccurredAt:  now,
	}
	switch r := req.(type) {
	case StayRequest:
		evt.CheckIn = r.CheckIn
		evt.CheckOut = r.CheckOut
	case InspectionRequest:
		evt.InspectionDate = r.Date
		evt.InspectionTime = r.Time
	}
	return evt
}
