package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RateLimiter decides whether a request from a client IP may proceed.
// Implementations must fail open: when the backing store is unreachable
// they return allowed=true together with the error.
type RateLimiter interface {
	Allow(ctx context.Context, clientIP string) (bool, error)
}

// RateLimit returns a gin middleware enforcing a fixed-window per-IP limit.
// Admin and health paths are exempt so operators keep access under load.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isExemptPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("Rate limiter unavailable, failing open")
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Too many requests",
			})
			return
		}

		c.Next()
	}
}

func isExemptPath(path string) bool {
	return strings.HasPrefix(path, "/api/v1/admin") ||
		path == "/health" || path == "/ready"
}
