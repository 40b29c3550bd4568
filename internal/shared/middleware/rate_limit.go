package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
)

// RateLimitConfig describes one fixed-window limiter.
type RateLimitConfig struct {
	// Scope prefixes the redis key so separate limiters don't collide
	Scope string

	// Max requests per window per client
	Max int

	// Window length
	Window time.Duration

	// IncludeUserAgent mixes the user agent into the client key
	// (the contact form throttles per IP+UA pair)
	IncludeUserAgent bool

	Message string
}

// RateLimit counts requests per client in redis and rejects with 429
// once the window budget is spent. Redis being unreachable fails open:
// blocking all traffic because the counter store is down is worse than
// letting a few extra requests through.
func RateLimit(store cache.Cache, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := limiterKey(c, cfg)

		ctx := c.Request.Context()
		count, err := store.Increment(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("scope", cfg.Scope).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(ctx, key, cfg.Window); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to set rate limit window")
			}
		}

		if count > int64(cfg.Max) {
			retryAfter := cfg.Window
			if ttl, err := store.TTL(ctx, key); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			response.TooManyRequests(c, cfg.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}

func limiterKey(c *gin.Context, cfg RateLimitConfig) string {
	client := utils.ExtractClientIP(c)
	if cfg.IncludeUserAgent {
		ua := c.GetHeader("User-Agent")
		if ua == "" {
			ua = "unknown"
		}
		client = client + "-" + ua
	}
	if len(client) > 100 {
		client = client[:100]
	}
	return fmt.Sprintf("ratelimit:%s:%s", cfg.Scope, client)
}
