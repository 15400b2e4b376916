package bootstrap

import (
	"context"
	"log/slog"

	"pet-resort-api/internal/infra/broker"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when AMQP is disabled or the broker is
// down at startup. Reservation events are best effort either way.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.AMQP.Enabled {
		return broker.NopPublisher{}
	}

	pub, err := broker.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		slog.Warn("rabbitmq unavailable, reservation events disabled", "error", err.Error())
		return broker.NopPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
