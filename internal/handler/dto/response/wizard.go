package response

import (
	"time"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/usecase"
)

type WizardResponse struct {
	ID               string                    `json:"id"`
	PropertyID       string                    `json:"propertyId"`
	PropertyTitle    string                    `json:"propertyTitle"`
	ListingType      string                    `json:"listingType"`
	MaxGuests        int                       `json:"maxGuests,omitempty"`
	Kind             string                    `json:"kind"`
	Step             string                    `json:"step"`
	StepNumber       int                       `json:"stepNumber"`
	Steps            []string                  `json:"steps"`
	Draft            DraftResponse             `json:"draft"`
	Pricing          *PricingResponse          `json:"pricing,omitempty"`
	Availability     AvailabilityResponse      `json:"availability"`
	Submission       SubmissionResponse        `json:"submission"`
	CanAdvance       bool                      `json:"canAdvance"`
	Blocker          string                    `json:"blocker,omitempty"`
	Confirmation     *ConfirmationResponse     `json:"confirmation,omitempty"`
	UnavailableDates []UnavailableDateResponse `json:"unavailableDates,omitempty"`
	UpdatedAt        int64                     `json:"updatedAt"`
}

type DraftResponse struct {
	CheckInDate     calendar.Date `json:"checkInDate,omitzero"`
	CheckOutDate    calendar.Date `json:"checkOutDate,omitzero"`
	Nights          int           `json:"nights"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail"`
	GuestPhone      string        `json:"guestPhone"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	InspectionDate  calendar.Date `json:"inspectionDate,omitzero"`
	InspectionTime  string        `json:"inspectionTime,omitempty"`
	CouponCode      string        `json:"couponCode,omitempty"`
}

// Amounts are decimal Naira.
type PricingResponse struct {
	UnitPrice      pricing.Money `json:"unitPrice"`
	Quantity       int           `json:"quantity"`
	BasePrice      pricing.Money `json:"basePrice"`
	ServiceFee     pricing.Money `json:"serviceFee"`
	TaxAmount      pricing.Money `json:"taxAmount"`
	CouponCode     string        `json:"couponCode,omitempty"`
	CouponDiscount pricing.Money `json:"couponDiscount"`
	TotalPrice     pricing.Money `json:"totalPrice"`
}

type AvailabilityResponse struct {
	State     string             `json:"state"`
	Message   string             `json:"message,omitempty"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

type ConflictResponse struct {
	Date   calendar.Date `json:"date"`
	Reason string        `json:"reason"`
}

type SubmissionResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

type ConfirmationResponse struct {
	BookingID  string        `json:"bookingId"`
	Status     string        `json:"status"`
	TotalPrice pricing.Money `json:"totalPrice"`
	CreatedAt  int64         `json:"createdAt"`
}

type UnavailableDateResponse struct {
	Date   calendar.Date `json:"date"`
	Reason string        `json:"reason"`
	Notes  string        `json:"notes,omitempty"`
}

func FromWizardView(v *usecase.WizardView) *WizardResponse {
	if v == nil {
		return nil
	}
	steps := make([]string, len(v.Steps))
	for i, s := range v.Steps {
		steps[i] = string(s)
	}
	resp := &WizardResponse{
		ID:            v.ID.String(),
		PropertyID:    v.PropertyID,
		PropertyTitle: v.PropertyTitle,
		ListingType:   v.ListingType,
		MaxGuests:     v.MaxGuests,
		Kind:          string(v.Kind),
		Step:          string(v.Step),
		StepNumber:    v.StepNumber,
		Steps:         steps,
		Draft:         fromDraft(v.Draft),
		Availability: AvailabilityResponse{
			State:     string(v.Check.State),
			Message:   v.Check.Message,
			Conflicts: fromConflicts(v.Check.Conflicts),
		},
		Submission: SubmissionResponse{
			State: string(v.Submit.State),
			Error: v.Submit.Error,
		},
		CanAdvance:       v.CanAdvance,
		Blocker:          v.Blocker,
		UnavailableDates: FromDetails(v.UnavailableDates),
		UpdatedAt:        v.UpdatedAt.Unix(),
	}
	if v.Pricing != nil {
		resp.Pricing = fromSnapshot(*v.Pricing)
	}
	if v.Confirmation != nil {
		resp.Confirmation = fromConfirmation(*v.Confirmation)
	}
	return resp
}

func fromDraft(d booking.Draft) DraftResponse {
	return DraftResponse{
		CheckInDate:     d.CheckIn,
		CheckOutDate:    d.CheckOut,
		Nights:          d.Nights,
		NumberOfGuests:  d.Guests,
		GuestName:       d.Guest.Name,
		GuestEmail:      d.Guest.Email,
		GuestPhone:      d.Guest.Phone,
		SpecialRequests: d.Guest.SpecialRequests,
		InspectionDate:  d.Inspection.Date,
		InspectionTime:  d.Inspection.Time,
		CouponCode:      d.CouponCode,
	}
}

func fromSnapshot(s pricing.Snapshot) *PricingResponse {
	return &PricingResponse{
		UnitPrice:      s.UnitPrice,
		Quantity:       s.Quantity,
		BasePrice:      s.BasePrice,
		ServiceFee:     s.ServiceFee,
		TaxAmount:      s.TaxAmount,
		CouponCode:     s.CouponCode,
		CouponDiscount: s.CouponDiscount,
		TotalPrice:     s.TotalPrice,
	}
}

func fromConfirmation(c booking.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		BookingID:  c.BookingID,
		Status:     c.Status,
		TotalPrice: c.TotalPrice,
		CreatedAt:  unixOrZero(c.CreatedAt),
	}
}

func fromConflicts(cs []availability.Conflict) []ConflictResponse {
	if len(cs) == 0 {
		return nil
	}
	out := make([]ConflictResponse, len(cs))
	for i, c := range cs {
		out[i] = ConflictResponse{Date: c.Date, Reason: c.Reason.String()}
	}
	return out
}

func FromDetails(ds []availability.Detail) []UnavailableDateResponse {
	if len(ds) == 0 {
		return nil
	}
	out := make([]UnavailableDateResponse, len(ds))
	for i, d := range ds {
		out[i] = UnavailableDateResponse{Date: d.Date, Reason: d.Reason.String(), Notes: d.Notes}
	}
	return out
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
