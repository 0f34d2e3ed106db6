package result

import "net/http"

// Result is the uniform value returned by every service operation. Expected
// domain outcomes (not-found, validation, business-rule conflicts) are failed
// Results; panics and infrastructure errors are left to the recovery layer.
type Result[T any] struct {
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message,omitempty"`
	Data       T        `json:"data,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, StatusCode: http.StatusOK, Data: data}
}

func Created[T any](data T) Result[T] {
	return Result[T]{Success: true, StatusCode: http.StatusCreated, Data: data}
}

func OkMessage[T any](message string) Result[T] {
	return Result[T]{Success: true, StatusCode: http.StatusOK, Message: message}
}

func Fail[T any](statusCode int, message string, errs ...string) Result[T] {
	return Result[T]{Success: false, StatusCode: statusCode, Message: message, Errors: errs}
}

func NotFound[T any](message string) Result[T] {
	return Fail[T](http.StatusNotFound, message)
}

func BadRequest[T any](message string, errs ...string) Result[T] {
	return Fail[T](http.StatusBadRequest, message, errs...)
}
