package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

// AuthMiddleware verifies the Bearer token and attaches the principal
// (user id, email, role) to the gin context for downstream handlers.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(shared.CtxUserID, claims.UserID)
		c.Set("email", claims.Email)
		c.Set(shared.CtxUserRole, claims.Role)

		c.Next()
	}
}
