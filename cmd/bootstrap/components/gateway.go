package components

import (
	"context"
	"log/slog"

	"estate-booking/internal/infra/events"
	"estate-booking/internal/infra/marketplace"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/metrics"
	"estate-booking/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) marketplace.Observer { return m },
		func(m *metrics.Metrics) usecase.Recorder { return m },
		fx.Annotate(
			NewMarketplaceClient,
			fx.As(new(usecase.AvailabilityAPI)),
			fx.As(new(usecase.BookingAPI)),
			fx.As(new(usecase.ProfileAPI)),
			fx.As(new(usecase.PropertyAPI)),
		),
		NewEventPublisher,
	),
)

func NewMarketplaceClient(cfg config.Config, logger *slog.Logger, observer marketplace.Observer) *marketplace.Client {
	return marketplace.NewClient(cfg.Marketplace, logger, observer)
}

type closingPublisher interface {
	usecase.EventPublisher
	Close() error
}

// NewEventPublisher writes booking events to Kafka when brokers are
// configured and only logs them otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.EventPublisher {
	var pub closingPublisher
	if cfg.Events.Enabled() {
		pub = events.NewKafkaPublisher(cfg.Events, logger)
		logger.Info("Booking events go to Kafka", "brokers", cfg.Events.Brokers, "topic", cfg.Events.BookingTopic)
	} else {
		pub = events.NewNoopPublisher(logger)
		logger.Info("No Kafka brokers configured, booking events are only logged")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
