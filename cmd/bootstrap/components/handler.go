package components

import (
	"estate-booking/internal/handler"
	"estate-booking/internal/handler/api"
	"estate-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(w *api.WizardHandler, a *api.AvailabilityHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Wizard: w, Availability: a, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
