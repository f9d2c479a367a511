package availability

import (
	"strings"

	"estate-booking/internal/domain/calendar"
)

type Conflict struct {
	Date   calendar.Date
	Reason Reason
}

// Pair identifies the exact date selection a check was made for.
type Pair struct {
	CheckIn  calendar.Date
	CheckOut calendar.Date
}

func (p Pair) String() string {
	return p.CheckIn.String() + "/" + p.CheckOut.String()
}

// CheckResult is only valid for its Pair; a result for another pair is stale.
type CheckResult struct {
	Pair        Pair
	IsAvailable bool
	Conflicts   []Conflict
}

func (r CheckResult) ConflictDates() []string {
	out := make([]string, len(r.Conflicts))
	for i, c := range r.Conflicts {
		out[i] = c.Date.String()
	}
	return out
}

// Message lists conflicting dates in the order the server returned them.
func (r CheckResult) Message() string {
	if r.IsAvailable {
		return ""
	}
	if len(r.Conflicts) == 0 {
		return "The selected dates are not available. Please choose different dates."
	}
	return "The selected dates are not available: " + strings.Join(r.ConflictDates(), ", ") + ". Please choose different dates."
}
