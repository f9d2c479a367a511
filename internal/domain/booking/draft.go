package booking

import (
	"strings"

	"estate-booking/internal/domain/calendar"
)

// GuestInfo is the contact block shared by stays and inspections.
type GuestInfo struct {
	Name            string `validate:"required,max=120"`
	Email           string `validate:"required,email,max=254"`
	Phone           string `validate:"required,phone"`
	SpecialRequests string `validate:"max=1000"`
}

func (g GuestInfo) normalized() GuestInfo {
	return GuestInfo{
		Name:            strings.TrimSpace(g.Name),
		Email:           strings.TrimSpace(g.Email),
		Phone:           strings.TrimSpace(g.Phone),
		SpecialRequests: strings.TrimSpace(g.SpecialRequests),
	}
}

// IsComplete only checks presence; Validate checks the format.
func (g GuestInfo) IsComplete() bool {
	return g.Name != "" && g.Email != "" && g.Phone != ""
}

func (g GuestInfo) Validate() error {
	return validateStruct(g.normalized())
}

type Inspection struct {
	Date calendar.Date
	Time string
}

func (i Inspection) IsSet() bool {
	return !i.Date.IsZero() && i.Time != ""
}

// Draft is the in-progress form of a single booking attempt.
type Draft struct {
	CheckIn    calendar.Date
	CheckOut   calendar.Date
	Nights     int
	Guests     int
	Guest      GuestInfo
	Inspection Inspection
	CouponCode string
}

func (d Draft) HasDates() bool {
	return !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}

// ValidateStay checks that check-out follows check-in and that the stay
// does not start before today.
func ValidateStay(checkIn, checkOut, today calendar.Date) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrDatesRequired
	}
	if !checkOut.After(checkIn) {
		return ErrCheckOutBeforeCheckIn
	}
	if checkIn.Before(today) {
		return ErrCheckInInPast
	}
	return nil
}

// NightsBetween is only meaningful for a pair that passed ValidateStay.
func NightsBetween(checkIn, checkOut calendar.Date) int {
	return checkIn.DaysUntil(checkOut)
}

func ValidateInspection(i Inspection, today calendar.Date) error {
	if i.Date.IsZero() || strings.TrimSpace(i.Time) == "" {
		return ErrInspectionRequired
	}
	if i.Date.Before(today) {
		return ErrInspectionInPast
	}
	if err := validate.Var(strings.TrimSpace(i.Time), "hhmm"); err != nil {
		return ErrInvalidInspectionTime
	}
	return nil
}
