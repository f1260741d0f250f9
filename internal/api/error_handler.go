package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/api/handler"
	"github.com/ieee-kiit/events-api/internal/core/domain"
)

// errorEnvelope is the canonical envelope for all API errors.
type errorEnvelope struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
	Errors  []handler.FieldError `json:"errors,omitempty"`
	Message string               `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as structured field/message arrays.
//   - Logs unexpected errors and hides their detail when production is true.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Errors: ve.Fields})
			return
		}

		code, msg, detail := resolveError(err, log, c, production)
		_ = c.JSON(code, errorEnvelope{Success: false, Error: msg, Message: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, production bool) (code int, msg, detail string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "Event not found", ""
	case errors.Is(err, domain.ErrSocietyNotFound):
		return http.StatusNotFound, "Society not found", ""
	case errors.Is(err, domain.ErrEndBeforeStart):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, domain.ErrNoFields):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if production {
		return http.StatusInternalServerError, "Internal server error", ""
	}
	return http.StatusInternalServerError, "Internal server error", err.Error()
}
