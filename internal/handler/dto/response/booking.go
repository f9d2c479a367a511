package response

import (
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
)

type BookingListItemResponse struct {
	ID             string        `json:"id"`
	PropertyID     string        `json:"propertyId"`
	PropertyTitle  string        `json:"propertyTitle,omitempty"`
	BookingType    string        `json:"bookingType"`
	Status         string        `json:"status"`
	CheckInDate    calendar.Date `json:"checkInDate,omitzero"`
	CheckOutDate   calendar.Date `json:"checkOutDate,omitzero"`
	InspectionDate calendar.Date `json:"inspectionDate,omitzero"`
	InspectionTime string        `json:"inspectionTime,omitempty"`
	TotalPrice     pricing.Money `json:"totalPrice"`
	CreatedAt      int64         `json:"createdAt"`
}

func FromBookingRecords(rs []booking.Record) []*BookingListItemResponse {
	out := make([]*BookingListItemResponse, len(rs))
	for i, r := range rs {
		out[i] = &BookingListItemResponse{
			ID:             r.ID,
			PropertyID:     r.PropertyID,
			PropertyTitle:  r.PropertyTitle,
			BookingType:    r.BookingType,
			Status:         r.Status,
			CheckInDate:    r.CheckIn,
			CheckOutDate:   r.CheckOut,
			InspectionDate: r.InspectionDate,
			InspectionTime: r.InspectionTime,
			TotalPrice:     r.TotalPrice,
			CreatedAt:      unixOrZero(r.CreatedAt),
		}
	}
	return out
}
