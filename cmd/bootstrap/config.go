package bootstrap

import (
	"time"

	"school-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

// NewBookingLocation is the single timezone all slot labels are computed in.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
