package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookKeyHeader carries the shared key on inbound provider webhooks
const WebhookKeyHeader = "x-api-key"

// WebhookAuthMiddleware rejects webhook deliveries that do not carry the
// configured shared key
func WebhookAuthMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "webhook key not configured",
			})
			return
		}

		provided := c.GetHeader(WebhookKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid webhook key",
			})
			return
		}

		c.Next()
	}
}
