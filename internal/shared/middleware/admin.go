package middleware

import (
	"github.com/gin-gonic/gin"

	"blogarchive-backend/internal/shared/response"
)

// Admin requires the role claim set by Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != "admin" {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
