//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"estate-booking/internal/domain/availability"
	"estate-booking/internal/domain/booking"
	"estate-booking/internal/domain/calendar"
	"estate-booking/internal/handler/api"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/infra/marketplace"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase"
	"estate-booking/tests/common/builder"
	"estate-booking/tests/common/httptest"
	"estate-booking/tests/common/testutil"
	usecasemock "estate-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var d = calendar.MustParse

type WizardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWizards *usecasemock.MockWizardUseCase
	cfg         config.Config
	view        *usecase.WizardView
	base        string
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWizards = usecasemock.NewMockWizardUseCase(s.mockCtrl)
	s.cfg = config.NewTestConfig()
	h := api.NewWizardHandler(s.mockWizards, s.cfg)

	s.view = builder.NewWizardBuilder().BuildView()
	s.base = "/wizards/" + s.view.ID.String()

	s.router.POST("/wizards", h.Open)
	s.router.GET("/wizards/:id", h.Get)
	s.router.PUT("/wizards/:id/dates", h.SelectDates)
	s.router.POST("/wizards/:id/availability/retry", h.RetryAvailability)
	s.router.PUT("/wizards/:id/guests", h.SetGuests)
	s.router.PUT("/wizards/:id/guest-info", h.SetGuestInfo)
	s.router.PUT("/wizards/:id/inspection", h.SetInspection)
	s.router.POST("/wizards/:id/coupon", h.ApplyCoupon)
	s.router.DELETE("/wizards/:id/coupon", h.RemoveCoupon)
	s.router.POST("/wizards/:id/next", h.Next)
	s.router.POST("/wizards/:id/back", h.Back)
	s.router.POST("/wizards/:id/submit", h.Submit)
	s.router.DELETE("/wizards/:id", h.Close)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *WizardHandlerTestSuite) TestOpen() {
	s.Run("success: returns 201 Created with Location", func() {
		s.mockWizards.EXPECT().Open(gomock.Any(), "prop-1").Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizards", map[string]any{"propertyId": "prop-1"}, "")

		var body resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.view.ID.String(), body.ID)
		s.Equal("date_selection", body.Step)
		s.Equal([]string{"date_selection", "guest_info", "payment", "confirmation"}, body.Steps)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/wizards/" + s.view.ID.String()})
	})

	s.Run("error: 400 when propertyId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizards", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 clears the cookie and points at the login page", func() {
		s.mockWizards.EXPECT().Open(gomock.Any(), "prop-1").Return(nil, usecase.ErrProfileUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizards", map[string]any{"propertyId": "prop-1"}, "")

		var detail resdto.ErrorDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnauthorized, usecase.ErrProfileUnavailable.Error(), &detail)
		s.Equal("/login", detail.Redirect)
		cookie := httptest.ExtractCookie(rec, s.cfg.Cookie.AccessTokenName)
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
		s.Negative(cookie.MaxAge)
	})

	s.Run("error: 404 for an unknown property", func() {
		s.mockWizards.EXPECT().Open(gomock.Any(), "gone").Return(nil, usecase.ErrPropertyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizards", map[string]any{"propertyId": "gone"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found.")
	})

	s.Run("error: 502 hides transport details", func() {
		netErr := errs.Mark(marketplace.ClientError{Kind: marketplace.KindNetwork, Operation: "GET /properties/prop-1"}, errs.ErrNetwork)
		s.mockWizards.EXPECT().Open(gomock.Any(), "prop-1").Return(nil, netErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizards", map[string]any{"propertyId": "prop-1"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "temporarily unavailable")
		s.NotContains(rec.Body.String(), "/properties/prop-1")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *WizardHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockWizards.EXPECT().Get(gomock.Any(), s.view.ID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base, nil, "")

		var body resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("prop-1", body.PropertyID)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizards/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid wizard id")
	})

	s.Run("error: 404 for another user's wizard", func() {
		id := uuid.New()
		s.mockWizards.EXPECT().Get(gomock.Any(), id).Return(nil, usecase.ErrWizardNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizards/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking wizard not found.")
	})
}

// ================================================================================
// TestSelectDates
// ================================================================================

func (s *WizardHandlerTestSuite) TestSelectDates() {
	url := s.base + "/dates"
	reqBody := builder.NewWizardBuilder().BuildSelectDatesRequestDTO()

	s.Run("success: dates are parsed as calendar days", func() {
		s.mockWizards.EXPECT().SelectDates(gomock.Any(), s.view.ID, d("2024-01-05"), d("2024-01-08")).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing checkInDate", mutate: testutil.Field("checkInDate", nil)},
			{name: "missing checkOutDate", mutate: testutil.Field("checkOutDate", nil)},
			{name: "timestamp instead of date", mutate: testutil.Field("checkInDate", "2024-01-05T00:00:00Z")},
			{name: "impossible date", mutate: testutil.Field("checkOutDate", "2024-02-30")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 lists the conflicting dates and returns the wizard", func() {
		conflictView := *s.view
		conflictView.Check = usecase.CheckView{
			State:     booking.CheckConflict,
			Message:   "conflict",
			Conflicts: []availability.Conflict{{Date: d("2024-01-06"), Reason: availability.ReasonBooking}},
		}
		conflictErr := usecase.ConflictError{Result: availability.CheckResult{Conflicts: conflictView.Check.Conflicts}}
		s.mockWizards.EXPECT().SelectDates(gomock.Any(), s.view.ID, gomock.Any(), gomock.Any()).Return(&conflictView, conflictErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var detail resdto.ErrorDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusConflict, "2024-01-06", &detail)
		s.Require().NotNil(detail.Wizard)
		s.Equal("conflict", detail.Wizard.Availability.State)
		s.Require().Len(detail.Wizard.Availability.Conflicts, 1)
		s.Equal(d("2024-01-06"), detail.Wizard.Availability.Conflicts[0].Date)
	})

	s.Run("error: 422 for dates in the wrong order", func() {
		s.mockWizards.EXPECT().SelectDates(gomock.Any(), s.view.ID, gomock.Any(), gomock.Any()).
			Return(s.view, booking.ErrCheckOutBeforeCheckIn)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrCheckOutBeforeCheckIn.Error())
	})

	s.Run("error: 503 when the check could not run", func() {
		failed := errs.Wrap(usecase.ErrCheckFailed, "check availability")
		s.mockWizards.EXPECT().SelectDates(gomock.Any(), s.view.ID, gomock.Any(), gomock.Any()).Return(s.view, failed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, booking.MsgCheckFailed)
	})
}

func (s *WizardHandlerTestSuite) TestRetryAvailability() {
	s.mockWizards.EXPECT().RetryAvailability(gomock.Any(), s.view.ID).Return(s.view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/availability/retry", nil, "")

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

// ================================================================================
// TestGuests
// ================================================================================

func (s *WizardHandlerTestSuite) TestGuests() {
	s.Run("error: 400 below one guest", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/guests", map[string]any{"numberOfGuests": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 above the property maximum", func() {
		s.mockWizards.EXPECT().SetGuests(gomock.Any(), s.view.ID, 9).Return(s.view, booking.ErrInvalidGuestCount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/guests", map[string]any{"numberOfGuests": 9}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrInvalidGuestCount.Error())
	})

	s.Run("error: 422 with per-field messages", func() {
		fields := errs.Mark(booking.FieldErrors{
			{Field: "guestEmail", Message: "Please enter a valid email address."},
		}, errs.ErrValidation)
		s.mockWizards.EXPECT().SetGuestInfo(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p usecase.GuestInfoParams) (*usecase.WizardView, error) {
				s.Equal("not-an-email", p.Email)
				return s.view, fields
			})
		reqBody := testutil.DtoMap(s.T(), builder.NewWizardBuilder().BuildGuestInfoRequestDTO(), testutil.Field("guestEmail", "not-an-email"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/guest-info", reqBody, "")

		var detail resdto.ErrorDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, "highlighted fields", &detail)
		s.Equal([]resdto.FieldErrorResponse{{Field: "guestEmail", Message: "Please enter a valid email address."}}, detail.Fields)
	})
}

// ================================================================================
// TestInspection
// ================================================================================

func (s *WizardHandlerTestSuite) TestInspection() {
	reqBody := testutil.DtoMap(s.T(), builder.NewWizardBuilder().BuildGuestInfoRequestDTO(),
		testutil.Field("inspectionDate", "2024-01-03"),
		testutil.Field("inspectionTime", "14:30"),
	)

	s.Run("success: embedded contact fields are bound", func() {
		s.mockWizards.EXPECT().SetInspection(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p usecase.InspectionParams) (*usecase.WizardView, error) {
				s.Equal(d("2024-01-03"), p.Date)
				s.Equal("14:30", p.Time)
				s.Equal("Ada Obi", p.Guest.Name)
				return s.view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/inspection", reqBody, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on a stay wizard", func() {
		s.mockWizards.EXPECT().SetInspection(gomock.Any(), s.view.ID, gomock.Any()).Return(s.view, booking.ErrWrongKind)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/inspection", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrWrongKind.Error())
	})
}

// ================================================================================
// TestCoupon
// ================================================================================

func (s *WizardHandlerTestSuite) TestCoupon() {
	s.Run("success: apply", func() {
		s.mockWizards.EXPECT().ApplyCoupon(gomock.Any(), s.view.ID, "save10").Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/coupon", map[string]any{"code": "save10"}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 for an unknown code", func() {
		s.mockWizards.EXPECT().ApplyCoupon(gomock.Any(), s.view.ID, "BOGUS").Return(s.view, usecase.ErrInvalidCoupon)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/coupon", map[string]any{"code": "BOGUS"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, usecase.ErrInvalidCoupon.Error())
	})

	s.Run("success: remove", func() {
		s.mockWizards.EXPECT().RemoveCoupon(gomock.Any(), s.view.ID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.base+"/coupon", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestNavigation
// ================================================================================

func (s *WizardHandlerTestSuite) TestNavigation() {
	s.Run("error: next is blocked by a pending check", func() {
		s.mockWizards.EXPECT().Next(gomock.Any(), s.view.ID).Return(s.view, booking.ErrAvailabilityPending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/next", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrAvailabilityPending.Error())
	})

	s.Run("error: back from the first step", func() {
		s.mockWizards.EXPECT().Back(gomock.Any(), s.view.ID).Return(s.view, booking.ErrNoPreviousStep)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/back", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, booking.ErrNoPreviousStep.Error())
	})

	s.Run("success: close answers 204", func() {
		s.mockWizards.EXPECT().Close(gomock.Any(), s.view.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.base, nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *WizardHandlerTestSuite) TestSubmit() {
	url := s.base + "/submit"

	s.Run("success: confirmation is rendered", func() {
		done := *s.view
		done.Step = booking.StepConfirmation
		done.Submit = usecase.SubmitView{State: booking.SubmitSucceeded}
		done.Confirmation = &booking.Confirmation{BookingID: "bk-1", Status: "pending"}
		s.mockWizards.EXPECT().Submit(gomock.Any(), s.view.ID).Return(&done, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmation", body.Step)
		s.Require().NotNil(body.Confirmation)
		s.Equal("bk-1", body.Confirmation.BookingID)
	})

	s.Run("error: maps submission failures to proper statuses", func() {
		rejected := errs.Mark(marketplace.ClientError{Kind: marketplace.KindRejected, Status: 422, Message: "Dates closed"}, errs.ErrValidation)
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "server rejection shows the server's text",
				err:            errs.Mark(usecase.SubmissionError{Message: "Dates closed"}, errs.ErrValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Dates closed",
			},
			{
				name:           "server failure shows the generic text",
				err:            errs.Mark(usecase.SubmissionError{Message: booking.MsgCreateFailed}, errs.ErrServer),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    booking.MsgCreateFailed,
			},
			{
				name:           "server-side conflict",
				err:            errs.Mark(errors.New("create booking"), errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    booking.ErrDatesUnavailable.Error(),
			},
			{
				name:           "submission already running",
				err:            booking.ErrSubmissionInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    booking.ErrSubmissionInProgress.Error(),
			},
			{
				name:           "already confirmed",
				err:            booking.ErrTerminal,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    booking.ErrTerminal.Error(),
			},
			{
				name:           "unclassified rejection from the client",
				err:            rejected,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "unexpected error",
				err:            errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockWizards.EXPECT().Submit(gomock.Any(), s.view.ID).Return(s.view, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
