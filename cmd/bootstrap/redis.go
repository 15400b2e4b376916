package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/infra/ratelimit"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewLoginLimiter,
	),
)

// NewLoginLimiter returns nil when rate limiting is switched off or Redis cannot be reached
// at startup; the middleware then lets every request through.
func NewLoginLimiter(lc fx.Lifecycle, cfg config.Config, c clock.Clock) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, login rate limiting disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return ratelimit.NewLimiter(client, cfg.RateLimit.Limit, cfg.RateLimit.Window, cfg.RateLimit.Prefix, c)
}
