package api

import (
	"net/http"

	resdto "estate-booking/internal/handler/dto/response"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	queries usecase.BookingQueries
	errors  errorResponder
}

func NewBookingHandler(queries usecase.BookingQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{queries: queries, errors: newErrorResponder(cfg)}
}

// @Summary List my bookings
// @Description Bookings of the signed-in user, newest first.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	records, err := h.queries.ListMine(c.Request.Context())
	if err != nil {
		h.errors.abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRecords(records))
}
