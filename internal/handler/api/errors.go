package api

import (
	"net/http"

	"estate-booking/internal/domain/booking"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/cookie"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidID      = "Invalid wizard id"
	msgUnavailable    = "The booking service is temporarily unavailable. Please try again."
	msgFieldErrors    = "Please correct the highlighted fields."
	msgInternal       = "Internal server error"
)

// errorResponder turns use-case errors into httperr responses. Auth failures
// also clear the session cookie and point the browser at the login page.
type errorResponder struct {
	loginURL string
	cookie   config.CookieConfig
}

func newErrorResponder(cfg config.Config) errorResponder {
	return errorResponder{loginURL: cfg.Wizard.LoginURL, cookie: cfg.Cookie}
}

func (r errorResponder) abort(c *gin.Context, err error, view *usecase.WizardView) {
	status, msg := classify(err)
	detail := resdto.ErrorDetail{Wizard: resdto.FromWizardView(view)}

	var fields booking.FieldErrors
	if errs.As(err, &fields) {
		detail.Fields = resdto.FromFieldErrors(fields)
	}
	if status == http.StatusUnauthorized {
		cookie.ClearAccessToken(c, r.cookie)
		detail.Redirect = r.loginURL
	}

	if detail.Wizard == nil && detail.Fields == nil && detail.Redirect == "" {
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

// classify maps the error taxonomy onto HTTP. Order matters: a failed check
// is also a network error, and a submission error keeps its cause's category.
func classify(err error) (int, string) {
	var (
		conflict usecase.ConflictError
		subErr   usecase.SubmissionError
		fields   booking.FieldErrors
	)
	switch {
	case errs.Is(err, errs.ErrAuth):
		return http.StatusUnauthorized, authMessage(err)
	case errs.As(err, &conflict):
		return http.StatusConflict, conflict.Error()
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, booking.ErrDatesUnavailable.Error()
	case errs.Is(err, usecase.ErrCheckFailed):
		return http.StatusServiceUnavailable, booking.MsgCheckFailed
	case errs.As(err, &subErr):
		if errs.Is(err, errs.ErrValidation) {
			return http.StatusUnprocessableEntity, subErr.Message
		}
		return http.StatusBadGateway, subErr.Message
	case errs.Is(err, errs.ErrCoupon):
		return http.StatusUnprocessableEntity, usecase.ErrInvalidCoupon.Error()
	case errs.As(err, &fields):
		return http.StatusUnprocessableEntity, msgFieldErrors
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, sentinelMessage(err, "Not found")
	case errs.Is(err, errs.ErrSubmissionInProgress):
		return http.StatusConflict, booking.ErrSubmissionInProgress.Error()
	case errs.Is(err, errs.ErrInvalidTransition), errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity, sentinelMessage(err, msgInvalidRequest)
	case errs.Is(err, errs.ErrNetwork), errs.Is(err, errs.ErrServer):
		return http.StatusBadGateway, msgUnavailable
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func authMessage(err error) string {
	if errs.Is(err, usecase.ErrProfileUnavailable) {
		return usecase.ErrProfileUnavailable.Error()
	}
	return usecase.ErrAuthRequired.Error()
}

// sentinelMessage returns the user-facing text of a known sentinel; anything
// else gets the fallback so transport details never reach the browser.
func sentinelMessage(err error, fallback string) string {
	for _, s := range userFacing {
		if errs.Is(err, s) {
			return s.Error()
		}
	}
	return fallback
}

var userFacing = []error{
	usecase.ErrWizardNotFound,
	usecase.ErrPropertyNotFound,
	usecase.ErrInvalidDateRange,
	booking.ErrClosed,
	booking.ErrCheckOutBeforeCheckIn,
	booking.ErrCheckInInPast,
	booking.ErrDatesRequired,
	booking.ErrInvalidGuestCount,
	booking.ErrInspectionRequired,
	booking.ErrInspectionInPast,
	booking.ErrInvalidInspectionTime,
	booking.ErrGuestInfoIncomplete,
	booking.ErrAvailabilityPending,
	booking.ErrAvailabilityUnknown,
	booking.ErrWrongStep,
	booking.ErrWrongKind,
	booking.ErrTerminal,
	booking.ErrNoPreviousStep,
}
