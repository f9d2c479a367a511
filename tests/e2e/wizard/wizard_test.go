//go:build e2e

package wizard_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/handler/dto/response"
	"estate-booking/tests/common/httptest"
	"estate-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	wizardsURL  = "/api/wizards"
	bookingsURL = "/api/bookings"
)

type WizardSuite struct {
	e2e.SharedSuite
}

func TestWizardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WizardSuite))
}

func today() calendar.Date {
	return calendar.DateOf(time.Now().UTC())
}

func (s *WizardSuite) request(method, path string, body any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, method, path, body, s.Token)
}

func (s *WizardSuite) open(propertyID string) response.WizardResponse {
	w := s.request(http.MethodPost, wizardsURL, map[string]any{"propertyId": propertyID})
	var view response.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &view)
	require.NotEmpty(s.T(), view.ID)
	return view
}

func (s *WizardSuite) ok(method, path string, body any) response.WizardResponse {
	w := s.request(method, path, body)
	var view response.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	return view
}

func dates(in, out calendar.Date) map[string]any {
	return map[string]any{"checkInDate": in.String(), "checkOutDate": out.String()}
}

// reachPayment opens a shortlet wizard and walks it to the payment step.
func (s *WizardSuite) reachPayment(in, out calendar.Date) string {
	view := s.open(e2e.ShortletID)
	base := wizardsURL + "/" + view.ID
	view = s.ok(http.MethodPut, base+"/dates", dates(in, out))
	require.True(s.T(), view.CanAdvance, view.Blocker)
	s.ok(http.MethodPost, base+"/next", nil)
	s.ok(http.MethodPut, base+"/guests", map[string]any{"numberOfGuests": 2})
	view = s.ok(http.MethodPost, base+"/next", nil)
	require.Equal(s.T(), "payment", view.Step)
	return base
}

var moneyAndDates = []cmp.Option{
	cmp.Comparer(func(a, b pricing.Money) bool { return a == b }),
	cmp.Comparer(func(a, b calendar.Date) bool { return a == b }),
}

// =============================================================================
// TestStayBooking - shortlet wizard end to end
// =============================================================================

func (s *WizardSuite) TestStayBooking() {
	s.Run("Normal case: shortlet is booked with a coupon", func() {
		t := s.T()
		in, out := today().AddDays(10), today().AddDays(13)

		view := s.open(e2e.ShortletID)
		s.Equal("stay", view.Kind)
		s.Equal("date_selection", view.Step)
		s.Equal("Ada Obi", view.Draft.GuestName)
		s.Equal("ada@example.com", view.Draft.GuestEmail)

		base := wizardsURL + "/" + view.ID
		view = s.ok(http.MethodPut, base+"/dates", dates(in, out))
		s.Equal("available", view.Availability.State)
		require.NotNil(t, view.Pricing)
		s.Equal(pricing.Naira(69000), view.Pricing.TotalPrice)

		s.ok(http.MethodPost, base+"/next", nil)
		s.ok(http.MethodPut, base+"/guests", map[string]any{"numberOfGuests": 2})
		s.ok(http.MethodPost, base+"/next", nil)

		view = s.ok(http.MethodPost, base+"/coupon", map[string]any{"code": "save10"})
		s.Equal(pricing.Naira(63000), view.Pricing.TotalPrice)

		view = s.ok(http.MethodPost, base+"/submit", nil)
		s.Equal("confirmation", view.Step)
		require.NotNil(t, view.Confirmation)
		s.Equal("bk-1", view.Confirmation.BookingID)

		got := s.Marketplace.Bookings()
		require.Len(t, got, 1)
		s.NotEmpty(got[0].IdempotencyKey)

		expected := e2e.FakeBooking{
			PropertyID:     e2e.ShortletID,
			BookingType:    "shortlet",
			CheckInDate:    in,
			CheckOutDate:   out,
			NumberOfNights: 3,
			NumberOfGuests: 2,
			BasePrice:      pricing.Naira(60000),
			ServiceFee:     pricing.Naira(6000),
			TaxAmount:      pricing.Naira(3000),
			DiscountAmount: pricing.Naira(6000),
			TotalPrice:     pricing.Naira(63000),
			CouponCode:     "SAVE10",
			GuestName:      "Ada Obi",
			GuestEmail:     "ada@example.com",
			GuestPhone:     "+2348012345678",
		}
		opts := append([]cmp.Option{
			cmpopts.IgnoreFields(e2e.FakeBooking{}, "ID", "Status", "CreatedAt", "IdempotencyKey", "PropertyTitle"),
		}, moneyAndDates...)
		if diff := cmp.Diff(expected, got[0], opts...); diff != "" {
			t.Errorf("Booking request mismatch (-want +got):\n%s", diff)
		}

		lw := s.request(http.MethodGet, bookingsURL, nil)
		var list []response.BookingListItemResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list, 1)
		s.Equal("bk-1", list[0].ID)
		s.Equal(in, list[0].CheckInDate)
	})

	s.Run("Error case: conflicting dates block the wizard until new dates pass", func() {
		t := s.T()
		in, out := today().AddDays(20), today().AddDays(23)
		s.Marketplace.Block(e2e.ShortletID, "booking", in.AddDays(1))

		view := s.open(e2e.ShortletID)
		base := wizardsURL + "/" + view.ID
		s.Require().Len(view.UnavailableDates, 1)

		w := s.request(http.MethodPut, base+"/dates", dates(in, out))
		var detail response.ErrorDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, in.AddDays(1).String(), &detail)
		require.NotNil(t, detail.Wizard)
		s.Equal("conflict", detail.Wizard.Availability.State)
		s.False(detail.Wizard.CanAdvance)

		w = s.request(http.MethodPost, base+"/next", nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")

		view = s.ok(http.MethodPut, base+"/dates", dates(in.AddDays(2), out.AddDays(2)))
		s.Equal("available", view.Availability.State)
		s.True(view.CanAdvance)
	})

	s.Run("Error case: dates taken before submit send the user back", func() {
		t := s.T()
		in, out := today().AddDays(30), today().AddDays(32)
		base := s.reachPayment(in, out)
		s.Marketplace.Block(e2e.ShortletID, "owner_blocked", in)

		w := s.request(http.MethodPost, base+"/submit", nil)

		var detail response.ErrorDetail
		httptest.AssertErrorDetail(t, w, http.StatusConflict, in.String(), &detail)
		require.NotNil(t, detail.Wizard)
		s.Equal("date_selection", detail.Wizard.Step)
		s.Equal(in, detail.Wizard.Draft.CheckInDate)
		s.Empty(s.Marketplace.Bookings())
	})

	s.Run("Error case: a failed create can be retried without duplicating", func() {
		t := s.T()
		base := s.reachPayment(today().AddDays(40), today().AddDays(41))
		s.Marketplace.FailNextCreates(1)

		w := s.request(http.MethodPost, base+"/submit", nil)
		var detail response.ErrorDetail
		httptest.AssertErrorDetail(t, w, http.StatusBadGateway, "database unavailable", &detail)
		require.NotNil(t, detail.Wizard)
		s.Equal("payment", detail.Wizard.Step)

		view := s.ok(http.MethodPost, base+"/submit", nil)
		s.Equal("confirmation", view.Step)
		s.Len(s.Marketplace.Bookings(), 1)
	})

	s.Run("Error case: past check-in is rejected without a remote check", func() {
		view := s.open(e2e.ShortletID)

		w := s.request(http.MethodPut, wizardsURL+"/"+view.ID+"/dates", dates(today().AddDays(-1), today().AddDays(2)))

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "past")
	})
}

// =============================================================================
// TestInspectionBooking - rental inspection request end to end
// =============================================================================

func (s *WizardSuite) TestInspectionBooking() {
	s.Run("Normal case: inspection is requested for a rental", func() {
		t := s.T()
		view := s.open(e2e.RentalID)
		s.Equal("inspection", view.Kind)
		s.Equal([]string{"viewing_request", "confirmation"}, view.Steps)

		base := wizardsURL + "/" + view.ID
		view = s.ok(http.MethodPut, base+"/inspection", map[string]any{
			"inspectionDate": today().AddDays(2).String(),
			"inspectionTime": "14:30",
			"guestName":      "Ada Obi",
			"guestEmail":     "ada@example.com",
			"guestPhone":     "+2348012345678",
		})
		require.NotNil(t, view.Pricing)
		s.Equal(pricing.Naira(5750), view.Pricing.TotalPrice)

		view = s.ok(http.MethodPost, base+"/submit", nil)
		s.Equal("confirmation", view.Step)

		got := s.Marketplace.Bookings()
		require.Len(t, got, 1)
		s.Equal("inspection", got[0].BookingType)
		s.Equal("14:30", got[0].InspectionTime)
	})

	s.Run("Error case: malformed inspection time", func() {
		view := s.open(e2e.RentalID)

		w := s.request(http.MethodPut, wizardsURL+"/"+view.ID+"/inspection", map[string]any{
			"inspectionDate": today().AddDays(2).String(),
			"inspectionTime": "2pm",
			"guestName":      "Ada Obi",
			"guestEmail":     "ada@example.com",
			"guestPhone":     "+2348012345678",
		})

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})
}

// =============================================================================
// TestAccess - authentication and lookups
// =============================================================================

func (s *WizardSuite) TestAccess() {
	s.Run("Error case: no session redirects to login", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, wizardsURL, map[string]any{"propertyId": e2e.ShortletID}, "")

		var detail struct {
			Redirect string `json:"redirect"`
		}
		httptest.AssertErrorDetail(s.T(), w, http.StatusUnauthorized, "", &detail)
		s.Equal(s.Config.Wizard.LoginURL, detail.Redirect)
	})

	s.Run("Error case: unknown property", func() {
		w := s.request(http.MethodPost, wizardsURL, map[string]any{"propertyId": "nope"})

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found.")
	})

	s.Run("Normal case: calendar lists unavailable dates", func() {
		t := s.T()
		blocked := today().AddDays(5)
		s.Marketplace.Block(e2e.ShortletID, "maintenance", blocked)

		w := s.request(http.MethodGet, "/api/properties/"+e2e.ShortletID+"/unavailable?startDate="+today().String()+"&endDate="+today().AddDays(30).String(), nil)

		var cal response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
		require.Len(t, cal.UnavailableDates, 1)
		s.Equal(blocked, cal.UnavailableDates[0].Date)
		s.Equal("maintenance", cal.UnavailableDates[0].Reason)
	})

	s.Run("Normal case: closed wizard is gone", func() {
		view := s.open(e2e.ShortletID)

		w := s.request(http.MethodDelete, wizardsURL+"/"+view.ID, nil)
		s.Equal(http.StatusNoContent, w.Code)

		w = s.request(http.MethodGet, wizardsURL+"/"+view.ID, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
