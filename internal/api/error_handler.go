package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/api/handler"
	"github.com/souqly/marketplace-api/internal/core/domain"
)

// authErrors are reported to the client by their own message.
var authErrors = []error{
	domain.ErrAuthMissing,
	domain.ErrAuthMalformed,
	domain.ErrTokenMalformed,
	domain.ErrTokenInvalidSignature,
	domain.ErrTokenExpired,
	domain.ErrTokenRevoked,
	domain.ErrSharedSecretMismatch,
	domain.ErrInvalidCredentials,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the response envelope: {"status": "error", "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.ErrorEnvelope(msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (unknown route, method not allowed, ...)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	case domain.IsAuthentication(err):
		for _, target := range authErrors {
			if errors.Is(err, target) {
				return http.StatusUnauthorized, target.Error()
			}
		}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusConflict, domain.ErrDuplicateUser.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("backend unavailable")
		return http.StatusInternalServerError, "database unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// validationMessage drops the sentinel prefix so clients only see the reason.
func validationMessage(err error) string {
	msg := err.Error()
	if reason, found := strings.CutPrefix(msg, domain.ErrValidation.Error()+": "); found {
		return reason
	}
	return msg
}
