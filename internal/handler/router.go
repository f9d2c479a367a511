package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"estate-booking/internal/handler/api"
	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Wizard       *api.WizardHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(m))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Metrics(m))
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		wizards := apiGroup.Group("/wizards")
		addRoutes(wizards, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Wizard.Open},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Wizard.Get, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Wizard.Close},
			{Method: http.MethodPut, Path: "/:id/dates", Handler: h.Wizard.SelectDates},
			{Method: http.MethodPost, Path: "/:id/availability/retry", Handler: h.Wizard.RetryAvailability},
			{Method: http.MethodPut, Path: "/:id/guests", Handler: h.Wizard.SetGuests},
			{Method: http.MethodPut, Path: "/:id/guest-info", Handler: h.Wizard.SetGuestInfo},
			{Method: http.MethodPut, Path: "/:id/inspection", Handler: h.Wizard.SetInspection},
			{Method: http.MethodPost, Path: "/:id/coupon", Handler: h.Wizard.ApplyCoupon},
			{Method: http.MethodDelete, Path: "/:id/coupon", Handler: h.Wizard.RemoveCoupon},
			{Method: http.MethodPost, Path: "/:id/next", Handler: h.Wizard.Next},
			{Method: http.MethodPost, Path: "/:id/back", Handler: h.Wizard.Back},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Wizard.Submit},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/properties/:id/unavailable", Handler: h.Availability.Calendar},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
