//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
)

// FakeProperty is a listing served by FakeMarketplace.
type FakeProperty struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	ListingType   string        `json:"listingType"`
	PricePerNight pricing.Money `json:"pricePerNight"`
	InspectionFee pricing.Money `json:"inspectionFee"`
	MaxGuests     int           `json:"maxGuests"`
}

// FakeBooking is what the BFF posted to /bookings, plus the fields the
// marketplace assigns.
type FakeBooking struct {
	ID              string        `json:"id"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	IdempotencyKey  string        `json:"-"`
	PropertyID      string        `json:"propertyId"`
	PropertyTitle   string        `json:"propertyTitle"`
	BookingType     string        `json:"bookingType"`
	CheckInDate     calendar.Date `json:"checkInDate,omitzero"`
	CheckOutDate    calendar.Date `json:"checkOutDate,omitzero"`
	NumberOfNights  int           `json:"numberOfNights,omitempty"`
	NumberOfGuests  int           `json:"numberOfGuests,omitempty"`
	InspectionDate  calendar.Date `json:"inspectionDate,omitzero"`
	InspectionTime  string        `json:"inspectionTime,omitempty"`
	BasePrice       pricing.Money `json:"basePrice"`
	ServiceFee      pricing.Money `json:"serviceFee"`
	TaxAmount       pricing.Money `json:"taxAmount"`
	DiscountAmount  pricing.Money `json:"discountAmount"`
	TotalPrice      pricing.Money `json:"totalPrice"`
	CouponCode      string        `json:"couponCode,omitempty"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail"`
	GuestPhone      string        `json:"guestPhone"`
	SpecialRequests string        `json:"specialRequests"`
}

type fakeProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// FakeMarketplace serves the marketplace REST API from memory. Only bearer
// tokens registered with AddUser are accepted.
type FakeMarketplace struct {
	server *httptest.Server

	mu          sync.Mutex
	users       map[string]fakeProfile
	properties  map[string]FakeProperty
	unavailable map[string]map[calendar.Date]string
	bookings    []FakeBooking
	failCreate  int
}

func NewFakeMarketplace() *FakeMarketplace {
	f := &FakeMarketplace{
		users:       map[string]fakeProfile{},
		properties:  map[string]FakeProperty{},
		unavailable: map[string]map[calendar.Date]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/profile", f.authed(f.profile))
	mux.HandleFunc("GET /properties/{id}", f.authed(f.property))
	mux.HandleFunc("GET /availability/unavailable/{id}", f.authed(f.unavailableDates))
	mux.HandleFunc("POST /availability/check/{id}", f.authed(f.checkRange))
	mux.HandleFunc("POST /bookings", f.authed(f.createBooking))
	mux.HandleFunc("GET /bookings/me", f.authed(f.myBookings))
	f.server = httptest.NewServer(mux)
	return f
}

func (f *FakeMarketplace) URL() string { return f.server.URL }
func (f *FakeMarketplace) Close()      { f.server.Close() }

// Reset forgets bookings and blocked dates; users and properties stay.
func (f *FakeMarketplace) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = nil
	f.unavailable = map[string]map[calendar.Date]string{}
	f.failCreate = 0
}

func (f *FakeMarketplace) AddUser(token, userID, firstName, lastName, email, phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[token] = fakeProfile{ID: userID, FirstName: firstName, LastName: lastName, Email: email, Phone: phone, Role: "guest"}
}

func (f *FakeMarketplace) AddProperty(p FakeProperty) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.properties[p.ID] = p
}

func (f *FakeMarketplace) Block(propertyID string, reason string, dates ...calendar.Date) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable[propertyID] == nil {
		f.unavailable[propertyID] = map[calendar.Date]string{}
	}
	for _, d := range dates {
		f.unavailable[propertyID][d] = reason
	}
}

// FailNextCreates makes the next n booking creations answer 500.
func (f *FakeMarketplace) FailNextCreates(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreate = n
}

func (f *FakeMarketplace) Bookings() []FakeBooking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeBooking(nil), f.bookings...)
}

func (f *FakeMarketplace) authed(next func(w http.ResponseWriter, r *http.Request, u fakeProfile)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		f.mu.Lock()
		u, ok := f.users[token]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next(w, r, u)
	}
}

func (f *FakeMarketplace) profile(w http.ResponseWriter, _ *http.Request, u fakeProfile) {
	writeJSON(w, http.StatusOK, map[string]any{"data": u})
}

func (f *FakeMarketplace) property(w http.ResponseWriter, r *http.Request, _ fakeProfile) {
	f.mu.Lock()
	p, ok := f.properties[r.PathValue("id")]
	f.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Property not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": p})
}

type dateDetail struct {
	Date   calendar.Date `json:"date"`
	Reason string        `json:"reason"`
}

func (f *FakeMarketplace) unavailableDates(w http.ResponseWriter, r *http.Request, _ fakeProfile) {
	start, err1 := calendar.Parse(r.URL.Query().Get("startDate"))
	end, err2 := calendar.Parse(r.URL.Query().Get("endDate"))
	if err1 != nil || err2 != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "startDate and endDate are required"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	dates := []calendar.Date{}
	details := []dateDetail{}
	for d, reason := range f.unavailable[r.PathValue("id")] {
		if d.Before(start) || d.After(end) {
			continue
		}
		dates = append(dates, d)
		details = append(details, dateDetail{Date: d, Reason: reason})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"unavailableDates":       dates,
		"unavailableDateDetails": details,
	}})
}

func (f *FakeMarketplace) checkRange(w http.ResponseWriter, r *http.Request, _ fakeProfile) {
	var req struct {
		CheckInDate  calendar.Date `json:"checkInDate"`
		CheckOutDate calendar.Date `json:"checkOutDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	conflicts := []dateDetail{}
	for d := req.CheckInDate; d.Before(req.CheckOutDate); d = d.AddDays(1) {
		if reason, ok := f.unavailable[r.PathValue("id")][d]; ok {
			conflicts = append(conflicts, dateDetail{Date: d, Reason: reason})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"isAvailable": len(conflicts) == 0,
		"conflicts":   conflicts,
	}})
}

func (f *FakeMarketplace) createBooking(w http.ResponseWriter, r *http.Request, _ fakeProfile) {
	var b FakeBooking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	b.IdempotencyKey = r.Header.Get("Idempotency-Key")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate > 0 {
		f.failCreate--
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "database unavailable"})
		return
	}
	for _, existing := range f.bookings {
		if b.IdempotencyKey != "" && existing.IdempotencyKey == b.IdempotencyKey {
			writeJSON(w, http.StatusCreated, map[string]any{"data": existing})
			return
		}
	}
	for d := b.CheckInDate; !d.IsZero() && d.Before(b.CheckOutDate); d = d.AddDays(1) {
		if _, taken := f.unavailable[b.PropertyID][d]; taken {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Dates are no longer available"})
			return
		}
	}

	b.ID = "bk-" + strconv.Itoa(len(f.bookings)+1)
	b.Status = "pending"
	b.CreatedAt = time.Now().UTC().Truncate(time.Second)
	b.PropertyTitle = f.properties[b.PropertyID].Title
	f.bookings = append(f.bookings, b)
	for d := b.CheckInDate; !d.IsZero() && d.Before(b.CheckOutDate); d = d.AddDays(1) {
		if f.unavailable[b.PropertyID] == nil {
			f.unavailable[b.PropertyID] = map[calendar.Date]string{}
		}
		f.unavailable[b.PropertyID][d] = "booking"
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": b})
}

func (f *FakeMarketplace) myBookings(w http.ResponseWriter, _ *http.Request, _ fakeProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": f.bookings})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
