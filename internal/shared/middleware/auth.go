package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unignoramus11/lumen/internal/shared/response"
	"github.com/unignoramus11/lumen/pkg/jwt"
)

// AuthMiddleware guards publisher-only routes. It accepts a request only
// when the Authorization header carries a validly signed, unexpired admin
// token; everything else is a 401 before any handler work happens.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
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

		if !manager.IsValidAdminToken(parts[1]) {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}
