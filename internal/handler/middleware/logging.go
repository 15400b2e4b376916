package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"pet-resort-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"
)

type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg config.LogConfig) *Logger {
	level := parseLevel(cfg.Level)
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(slog.String("service", "pet-resort-api"))
	slog.SetDefault(logger)

	return &Logger{logger: logger}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware tags each request with an id (honouring an incoming
// X-Request-ID) and logs one line when it starts and one when it completes.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(context.Background(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.String("route", c.FullPath()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if principal, ok := GetPrincipal(c); ok {
			attrs = append(attrs,
				slog.String("user_id", principal.SubjectID.String()),
				slog.String("role", principal.Role.String()))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(context.Background(), level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
