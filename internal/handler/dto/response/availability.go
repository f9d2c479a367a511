package response

import (
	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/calendar"
)

type CalendarResponse struct {
	PropertyID       string                    `json:"propertyId"`
	StartDate        calendar.Date             `json:"startDate"`
	EndDate          calendar.Date             `json:"endDate"`
	UnavailableDates []UnavailableDateResponse `json:"unavailableDates"`
}

func FromWindow(w *availability.Window) *CalendarResponse {
	dates := FromDetails(w.Details())
	if dates == nil {
		dates = []UnavailableDateResponse{}
	}
	return &CalendarResponse{
		PropertyID:       w.PropertyID(),
		StartDate:        w.Start(),
		EndDate:          w.End(),
		UnavailableDates: dates,
	}
}
