package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
)

// AdminMiddleware checks if the authenticated user has the admin role.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(shared.CtxUserRole)
		if !exists {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
