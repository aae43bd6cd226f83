package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope wraps every response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// ErrorEnvelope builds the body of a failed request.
func ErrorEnvelope(message string) Envelope {
	return Envelope{Status: statusError, Message: message}
}

func ok(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Message: message, Data: data})
}

// okList renders a collection with its size. Empty results render as [].
func okList[T any](c echo.Context, message string, items []T) error {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Message: message, Data: items, Count: &n})
}
