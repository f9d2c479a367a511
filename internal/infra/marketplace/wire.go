package marketplace

import (
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/domain/property"
	"estate-booking/internal/domain/user"
)

type unavailableResponse struct {
	UnavailableDates       []calendar.Date `json:"unavailableDates"`
	UnavailableDateDetails []struct {
		Date   calendar.Date `json:"date"`
		Reason string        `json:"reason"`
		Notes  string        `json:"notes"`
	} `json:"unavailableDateDetails"`
}

// toWindow merges the plain date list with the detailed list; a date only in
// the plain list gets the generic reason.
func (r unavailableResponse) toWindow(propertyID string, start, end calendar.Date, fetchedAt time.Time) *availability.Window {
	details := make([]availability.Detail, 0, len(r.UnavailableDates))
	seen := make(map[calendar.Date]bool, len(r.UnavailableDates))
	for _, d := range r.UnavailableDateDetails {
		if d.Date.IsZero() || seen[d.Date] {
			continue
		}
		seen[d.Date] = true
		details = append(details, availability.Detail{
			Date:   d.Date,
			Reason: availability.ParseReason(d.Reason),
			Notes:  d.Notes,
		})
	}
	for _, d := range r.UnavailableDates {
		if d.IsZero() || seen[d] {
			continue
		}
		seen[d] = true
		details = append(details, availability.Detail{Date: d, Reason: availability.ReasonUnavailable})
	}
	return availability.NewWindow(propertyID, start, end, details, fetchedAt)
}

type checkRequest struct {
	CheckInDate  calendar.Date `json:"checkInDate"`
	CheckOutDate calendar.Date `json:"checkOutDate"`
}

type checkResponse struct {
	IsAvailable bool `json:"isAvailable"`
	Conflicts   []struct {
		Date   calendar.Date `json:"date"`
		Reason string        `json:"reason"`
	} `json:"conflicts"`
}

func (r checkResponse) toResult(pair availability.Pair) *availability.CheckResult {
	res := &availability.CheckResult{Pair: pair, IsAvailable: r.IsAvailable}
	for _, c := range r.Conflicts {
		res.Conflicts = append(res.Conflicts, availability.Conflict{
			Date:   c.Date,
			Reason: availability.ParseReason(c.Reason),
		})
	}
	// A negative answer without listed dates is still a conflict.
	if len(res.Conflicts) > 0 {
		res.IsAvailable = false
	}
	return res
}

type createBookingRequest struct {
	PropertyID      string        `json:"propertyId"`
	BookingType     string        `json:"bookingType"`
	CheckInDate     calendar.Date `json:"checkInDate,omitzero"`
	CheckOutDate    calendar.Date `json:"checkOutDate,omitzero"`
	NumberOfNights  int           `json:"numberOfNights,omitempty"`
	NumberOfGuests  int           `json:"numberOfGuests,omitempty"`
	InspectionDate  calendar.Date `json:"inspectionDate,omitzero"`
	InspectionTime  string        `json:"inspectionTime,omitempty"`
	BasePrice       pricing.Money `json:"basePrice"`
	TotalPrice      pricing.Money `json:"totalPrice"`
	ServiceFee      pricing.Money `json:"serviceFee"`
	TaxAmount       pricing.Money `json:"taxAmount"`
	DiscountAmount  pricing.Money `json:"discountAmount"`
	CouponCode      string        `json:"couponCode,omitempty"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail"`
	GuestPhone      string        `json:"guestPhone"`
	SpecialRequests string        `json:"specialRequests"`
}

func newCreateBookingRequest(r booking.Request) createBookingRequest {
	amounts := r.Amounts()
	contact := r.Contact()
	out := createBookingRequest{
		PropertyID:      r.PropertyID(),
		BookingType:     r.BookingType(),
		BasePrice:       amounts.BasePrice,
		TotalPrice:      amounts.TotalPrice,
		ServiceFee:      amounts.ServiceFee,
		TaxAmount:       amounts.TaxAmount,
		DiscountAmount:  amounts.CouponDiscount,
		CouponCode:      amounts.CouponCode,
		GuestName:       contact.Name,
		GuestEmail:      contact.Email,
		GuestPhone:      contact.Phone,
		SpecialRequests: contact.SpecialRequests,
	}
	switch req := r.(type) {
	case booking.StayRequest:
		out.CheckInDate = req.CheckIn
		out.CheckOutDate = req.CheckOut
		out.NumberOfNights = req.Nights
		out.NumberOfGuests = req.Guests
	case booking.InspectionRequest:
		out.InspectionDate = req.Date
		out.InspectionTime = req.Time
	}
	return out
}

type bookingRecord struct {
	ID             string        `json:"id"`
	PropertyID     string        `json:"propertyId"`
	PropertyTitle  string        `json:"propertyTitle"`
	BookingType    string        `json:"bookingType"`
	Status         string        `json:"status"`
	CheckInDate    calendar.Date `json:"checkInDate"`
	CheckOutDate   calendar.Date `json:"checkOutDate"`
	InspectionDate calendar.Date `json:"inspectionDate"`
	InspectionTime string        `json:"inspectionTime"`
	TotalPrice     pricing.Money `json:"totalPrice"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (b bookingRecord) toDomain() booking.Record {
	return booking.Record{
		ID:             b.ID,
		PropertyID:     b.PropertyID,
		PropertyTitle:  b.PropertyTitle,
		BookingType:    b.BookingType,
		Status:         b.Status,
		CheckIn:        b.CheckInDate,
		CheckOut:       b.CheckOutDate,
		InspectionDate: b.InspectionDate,
		InspectionTime: b.InspectionTime,
		TotalPrice:     b.TotalPrice,
		CreatedAt:      b.CreatedAt,
	}
}

type profileResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

func (p profileResponse) toDomain() (*user.Profile, error) {
	role, err := user.NewRole(p.Role)
	if err != nil {
		return nil, err
	}
	return user.NewProfile(p.ID, p.FirstName, p.LastName, p.Email, p.Phone, role)
}

type propertyResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	ListingType   string        `json:"listingType"`
	PricePerNight pricing.Money `json:"pricePerNight"`
	InspectionFee pricing.Money `json:"inspectionFee"`
	MaxGuests     int           `json:"maxGuests"`
}

func (p propertyResponse) toDomain() (*property.Property, error) {
	lt, err := property.NewListingType(p.ListingType)
	if err != nil {
		return nil, err
	}
	return property.NewProperty(p.ID, p.Title, lt, p.PricePerNight, p.InspectionFee, p.MaxGuests)
}
