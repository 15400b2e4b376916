package ratelimit

import (
	"context"
	"fmt"
	"time"

	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter: the first hit in a window creates the key with a TTL
// of one window and every hit increments it.
type Limiter struct {
	rdb    redis.UniversalClient
	limit  int
	window time.Duration
	prefix string
	clock  clock.Clock
}

func NewLimiter(rdb redis.UniversalClient, limit int, window time.Duration, prefix string, c clock.Clock) *Limiter {
	if c == nil {
		c = clock.NewRealClock()
	}
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
		clock:  c,
	}
}

func (l *Limiter) Allow(ctx context.Context, key string) (shared.RateLimitResult, error) {
	windowStart := l.clock.Now().Truncate(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, windowStart.Unix())

	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return shared.RateLimitResult{}, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := int(incr.Val())
	res := shared.RateLimitResult{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(0, l.limit-count),
	}
	if !res.Allowed {
		res.RetryAfter = windowStart.Add(l.window).Sub(l.clock.Now())
	}
	return res, nil
}
