package bootstrap

import (
	"log/slog"

	"pet-resort-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig reports the optional integrations at startup. Secrets are never logged.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"jwt_duration", cfg.JWT.Duration,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"amqp_enabled", cfg.AMQP.Enabled)
}
