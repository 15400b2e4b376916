package bootstrap

import (
	"log/slog"

	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
	fx.Invoke(func(*slog.Logger) {}),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger also installs the logger as the slog default so package-level calls share
// its level and format.
func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
