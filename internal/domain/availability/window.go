package availability

import (
	"sort"
	"time"

	"estate-booking/internal/domain/calendar"
)

type Reason string

const (
	ReasonBooking      Reason = "booking"
	ReasonMaintenance  Reason = "maintenance"
	ReasonOwnerBlocked Reason = "owner_blocked"
	ReasonAdminBlocked Reason = "admin_blocked"
	ReasonUnavailable  Reason = "unavailable"
)

// ParseReason maps unknown server values to ReasonUnavailable.
func ParseReason(s string) Reason {
	switch r := Reason(s); r {
	case ReasonBooking, ReasonMaintenance, ReasonOwnerBlocked, ReasonAdminBlocked, ReasonUnavailable:
		return r
	default:
		return ReasonUnavailable
	}
}

func (r Reason) String() string {
	return string(r)
}

type Detail struct {
	Date   calendar.Date
	Reason Reason
	Notes  string
}

// Window is a read-only view of a property's blocked days in [Start, End].
// A new fetch replaces the whole window.
type Window struct {
	propertyID string
	start      calendar.Date
	end        calendar.Date
	days       map[calendar.Date]Detail
	fetchedAt  time.Time
}

func NewWindow(propertyID string, start, end calendar.Date, details []Detail, fetchedAt time.Time) *Window {
	days := make(map[calendar.Date]Detail, len(details))
	for _, d := range details {
		if d.Date.IsZero() {
			continue
		}
		if d.Reason == "" {
			d.Reason = ReasonUnavailable
		}
		days[d.Date] = d
	}
	return &Window{
		propertyID: propertyID,
		start:      start,
		end:        end,
		days:       days,
		fetchedAt:  fetchedAt,
	}
}

func (w *Window) PropertyID() string   { return w.propertyID }
func (w *Window) Start() calendar.Date { return w.start }
func (w *Window) End() calendar.Date   { return w.end }
func (w *Window) FetchedAt() time.Time { return w.fetchedAt }

func (w *Window) IsUnavailable(d calendar.Date) bool {
	_, ok := w.days[d]
	return ok
}

// Covers reports whether every night of [checkIn, checkOut) lies inside the window.
func (w *Window) Covers(checkIn, checkOut calendar.Date) bool {
	return !checkIn.Before(w.start) && !checkOut.AddDays(-1).After(w.end)
}

// Details returns the blocked days in ascending date order.
func (w *Window) Details() []Detail {
	out := make([]Detail, 0, len(w.days))
	for _, d := range w.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (w *Window) Dates() []calendar.Date {
	details := w.Details()
	out := make([]calendar.Date, len(details))
	for i, d := range details {
		out[i] = d.Date
	}
	return out
}

// ConflictsIn is the local pre-filter: the nights of [checkIn, checkOut) that
// the cached window already knows to be blocked. It is never authoritative.
func (w *Window) ConflictsIn(checkIn, checkOut calendar.Date) []Conflict {
	var out []Conflict
	for _, day := range calendar.Range(checkIn, checkOut) {
		if d, ok := w.days[day]; ok {
			out = append(out, Conflict{Date: day, Reason: d.Reason})
		}
	}
	return out
}
