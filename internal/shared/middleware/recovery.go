package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/unignoramus11/lumen/internal/shared/response"
	"github.com/unignoramus11/lumen/pkg/logger"
)

// Recovery converts a handler panic into the standard error envelope
// instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(
					fmt.Sprintf("panic recovered (request_id=%s)", c.GetString("request_id")),
					fmt.Errorf("%v", r),
				)
				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
