package api

import (
	"net/http"

	reqdto "estate-booking/internal/handler/dto/request"
	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/handler/httperr"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	queries usecase.AvailabilityQueries
	errors  errorResponder
}

func NewAvailabilityHandler(queries usecase.AvailabilityQueries, cfg config.Config) *AvailabilityHandler {
	return &AvailabilityHandler{queries: queries, errors: newErrorResponder(cfg)}
}

// @Summary Property availability calendar
// @Description Unavailable dates of a property. Without bounds the rolling window starting today is returned.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/properties/{id}/unavailable [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	start, end, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	w, err := h.queries.Calendar(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		h.errors.abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWindow(w))
}
