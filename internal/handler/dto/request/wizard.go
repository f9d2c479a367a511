package request

import (
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/usecase"
)

type OpenWizardRequest struct {
	PropertyID string `json:"propertyId" binding:"required,max=64"`
}

type SelectDatesRequest struct {
	CheckInDate  string `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
}

func (r *SelectDatesRequest) ToDomain() (checkIn, checkOut calendar.Date, err error) {
	if checkIn, err = calendar.Parse(r.CheckInDate); err != nil {
		return
	}
	checkOut, err = calendar.Parse(r.CheckOutDate)
	return
}

type SetGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests" binding:"required,min=1"`
}

// Field rules live in the domain so the wizard reports them per field.
type GuestInfoRequest struct {
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	SpecialRequests string `json:"specialRequests"`
}

func (r *GuestInfoRequest) ToParams() usecase.GuestInfoParams {
	return usecase.GuestInfoParams{
		Name:            r.GuestName,
		Email:           r.GuestEmail,
		Phone:           r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
	}
}

type InspectionRequest struct {
	InspectionDate string `json:"inspectionDate" binding:"required,datetime=2006-01-02"`
	InspectionTime string `json:"inspectionTime" binding:"required"`
	GuestInfoRequest
}

func (r *InspectionRequest) ToParams() (usecase.InspectionParams, error) {
	date, err := calendar.Parse(r.InspectionDate)
	if err != nil {
		return usecase.InspectionParams{}, err
	}
	return usecase.InspectionParams{
		Date:  date,
		Time:  r.InspectionTime,
		Guest: r.GuestInfoRequest.ToParams(),
	}, nil
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

// Empty bounds fall back to the rolling availability window.
type CalendarQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

func (q *CalendarQuery) ToDomain() (start, end calendar.Date, err error) {
	if q.StartDate != "" {
		if start, err = calendar.Parse(q.StartDate); err != nil {
			return
		}
	}
	if q.EndDate != "" {
		end, err = calendar.Parse(q.EndDate)
	}
	return
}
