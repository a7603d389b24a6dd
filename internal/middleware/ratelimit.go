package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/yb-lee/sns-feed-backend/internal/config"
	"github.com/yb-lee/sns-feed-backend/internal/logger"
)

// RateLimiter caps requests per client IP over a fixed window, with the
// counters kept in Redis so multiple instances share one budget.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    *logger.Logger
}

func NewRateLimiter(redisCfg config.RedisConfig, rlCfg config.RateLimitConfig, baseLog *logger.Logger) (*RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		PoolSize: redisCfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisCfg.Addr, err)
	}

	return &RateLimiter{
		client: client,
		limit:  rlCfg.Limit,
		window: time.Duration(rlCfg.WindowSeconds) * time.Second,
		log:    baseLog.With("component", "RateLimiter"),
	}, nil
}

func (rl *RateLimiter) allow(ctx context.Context, id string) (bool, error) {
	key := "ratelimit:" + id
	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.limit), nil
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := rl.allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Fail open: a degraded limiter should not take the API down.
			rl.log.Warn("Rate limit check failed", "error", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
