package booking

import (
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Request is the creation payload sent to the marketplace. It is either a
// StayRequest or an InspectionRequest.
type Request interface {
	Kind() Kind
	PropertyID() string
	BookingType() string
	IdempotencyKey() uuid.UUID
	Amounts() pricing.Snapshot
	Contact() Contact
}

type Contact struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

type base struct {
	propertyID     string
	bookingType    string
	idempotencyKey uuid.UUID
	contact        Contact
	amounts        pricing.Snapshot
}

func (b base) PropertyID() string        { return b.propertyID }
func (b base) BookingType() string       { return b.bookingType }
func (b base) IdempotencyKey() uuid.UUID { return b.idempotencyKey }
func (b base) Amounts() pricing.Snapshot { return b.amounts }
func (b base) Contact() Contact          { return b.contact }

type StayRequest struct {
	base
	CheckIn  calendar.Date
	CheckOut calendar.Date
	Nights   int
	Guests   int
}

func (StayRequest) Kind() Kind { return KindStay }

type InspectionRequest struct {
	base
	Date calendar.Date
	Time string
}

func (InspectionRequest) Kind() Kind { return KindInspection }

func (w *Wizard) buildRequest() Request {
	d := w.draft
	b := base{
		propertyID:     w.property.ID(),
		bookingType:    w.property.ListingType().String(),
		idempotencyKey: w.idempotencyKey,
		contact: Contact{
			Name:            d.Guest.Name,
			Email:           d.Guest.Email,
			Phone:           d.Guest.Phone,
			SpecialRequests: d.Guest.SpecialRequests,
		},
		amounts: w.pricing,
	}
	if w.kind == KindStay {
		return StayRequest{
			base:     b,
			CheckIn:  d.CheckIn,
			CheckOut: d.CheckOut,
			Nights:   d.Nights,
			Guests:   d.Guests,
		}
	}
	b.bookingType = string(KindInspection)
	return InspectionRequest{
		base: b,
		Date: d.Inspection.Date,
		Time: d.Inspection.Time,
	}
}
