package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blogarchive-backend/internal/shared/response"
)

// Errors normalizes unexpected service errors attached to the context into a
// 500 response. Internal detail is only revealed in development mode.
func Errors(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")

		message := "internal server error"
		if env == "development" {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, response.Envelope{
			Success: false,
			Message: message,
		})
	}
}
