package middleware

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"pet-resort-api/internal/handler/httperr"
	"pet-resort-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errors.New("rate limit exceeded")

type RateLimiter interface {
	Allow(ctx context.Context, key string) (shared.RateLimitResult, error)
}

// RateLimit throttles a route per client IP. A nil limiter disables it, and a Redis error
// lets the request through.
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "scope", scope, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			secs := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", gin.H{"retry_after": secs})
			return
		}

		c.Next()
	}
}
