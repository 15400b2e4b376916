package middleware

import (
	"log/slog"
	"slices"

	"pet-resort-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers hide response headers from scripts unless they are exposed.
var exposedByAPI = []string{
	requestIDHeader,
	"Retry-After",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedByAPI {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
		"expose_headers", expose)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
