package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaintenanceChecker reports whether maintenance mode is enabled
type MaintenanceChecker interface {
	MaintenanceOn(ctx context.Context) bool
}

// Maintenance returns a gin middleware that serves 503 while maintenance
// mode is on. Admin and health paths stay reachable so the flag can be
// switched back off.
func Maintenance(checker MaintenanceChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/admin") || path == "/health" || path == "/ready" {
			c.Next()
			return
		}

		if checker.MaintenanceOn(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"code":    http.StatusServiceUnavailable,
				"message": "Service under maintenance",
			})
			return
		}

		c.Next()
	}
}
