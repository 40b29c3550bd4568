package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/utils"
)

// ClientIPMiddleware extracts the client IP address from the request
// and injects it into the context for downstream handlers to use.
// Register early in the chain so every handler sees it.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		// gin context for handlers, request context for services
		c.Set(shared.CtxClientIP, clientIP)
		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

type clientIPKey struct{}

// GetClientIPFromContext retrieves the client IP from a request context.
// Returns empty string if not found.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
