package components

import (
	"school-booking/internal/handler"
	"school-booking/internal/handler/api"
	"school-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewResourceHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	resource *api.ResourceHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Reservation:  reservation,
		Resource:     resource,
		Settings:     settings,
	}
}
