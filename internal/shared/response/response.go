package response

import (
	"github.com/gin-gonic/gin"

	"blogarchive-backend/internal/shared/result"
)

// Envelope is the JSON body every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// FromResult writes a service Result as the uniform envelope, using the
// Result's own status code.
func FromResult[T any](c *gin.Context, res result.Result[T]) {
	body := Envelope{
		Success: res.Success,
		Message: res.Message,
		Errors:  res.Errors,
	}
	if res.Success {
		body.Data = res.Data
	}
	c.JSON(res.StatusCode, body)
}

// Respond writes a service outcome. Unexpected errors are attached to the
// context for the error middleware, the single layer that normalizes them.
func Respond[T any](c *gin.Context, res result.Result[T], err error) {
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	FromResult(c, res)
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, message string, errs ...string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message, Errors: errs})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
