package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool", "acquired", stat.AcquiredConns(), "total", stat.TotalConns())
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
