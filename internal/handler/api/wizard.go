package api

import (
	"net/http"

	reqdto "estate-booking/internal/handler/dto/request"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizards usecase.WizardUseCase
	errors  errorResponder
}

func NewWizardHandler(wizards usecase.WizardUseCase, cfg config.Config) *WizardHandler {
	return &WizardHandler{wizards: wizards, errors: newErrorResponder(cfg)}
}

// @Summary Open booking wizard
// @Description Start a booking wizard for a property. Shortlets and hotels get the stay flow, rentals and sales the inspection flow.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenWizardRequest true "Property to book"
// @Success 201 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/wizards [post]
func (h *WizardHandler) Open(c *gin.Context) {
	var req reqdto.OpenWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.Open(c.Request.Context(), req.PropertyID)
	if err != nil {
		h.errors.abort(c, err, view)
		return
	}
	c.Header("Location", "/api/wizards/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

// @Summary Get booking wizard
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/wizards/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Get(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Select stay dates
// @Description Select check-in and check-out dates. The server's range check decides availability; conflicts answer 409 with the conflicting dates.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.SelectDatesRequest true "Date pair"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/wizards/{id}/dates [put]
func (h *WizardHandler) SelectDates(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	checkIn, checkOut, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.SelectDates(c.Request.Context(), id, checkIn, checkOut)
	h.respond(c, view, err)
}

// @Summary Retry availability check
// @Description Re-run a failed availability check for the selected dates.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/wizards/{id}/availability/retry [post]
func (h *WizardHandler) RetryAvailability(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.RetryAvailability(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Set number of guests
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.SetGuestsRequest true "Guest count"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/guests [put]
func (h *WizardHandler) SetGuests(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req reqdto.SetGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.SetGuests(c.Request.Context(), id, req.NumberOfGuests)
	h.respond(c, view, err)
}

// @Summary Set guest information
// @Description Field problems answer 422 with per-field messages; the draft keeps its previous values.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.GuestInfoRequest true "Guest information"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/guest-info [put]
func (h *WizardHandler) SetGuestInfo(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req reqdto.GuestInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.SetGuestInfo(c.Request.Context(), id, req.ToParams())
	h.respond(c, view, err)
}

// @Summary Set inspection details
// @Description Inspection flow only: preferred date, time (HH:MM) and contact details.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.InspectionRequest true "Inspection request"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/inspection [put]
func (h *WizardHandler) SetInspection(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req reqdto.InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.SetInspection(c.Request.Context(), id, params)
	h.respond(c, view, err)
}

// @Summary Apply coupon
// @Description Unknown codes answer 422 and leave the current discount unchanged.
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/coupon [post]
func (h *WizardHandler) ApplyCoupon(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	view, err := h.wizards.ApplyCoupon(c.Request.Context(), id, req.Code)
	h.respond(c, view, err)
}

// @Summary Remove coupon
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/wizards/{id}/coupon [delete]
func (h *WizardHandler) RemoveCoupon(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.RemoveCoupon(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Next step
// @Description Advance when the current step is complete; otherwise 422 with the blocking reason.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Next(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Previous step
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /api/wizards/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Back(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Submit booking
// @Description Re-checks availability for stays, then creates the booking. A retry after a failure reuses the same idempotency key.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/wizards/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Submit(c.Request.Context(), id)
	h.respond(c, view, err)
}

// @Summary Close booking wizard
// @Description Discard the wizard and its draft.
// @Tags wizards
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/wizards/{id} [delete]
func (h *WizardHandler) Close(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	if err := h.wizards.Close(c.Request.Context(), id); err != nil {
		h.errors.abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respond(c *gin.Context, view *usecase.WizardView, err error) {
	if err != nil {
		h.errors.abort(c, err, view)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

func wizardID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
