package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hackfest/submission-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// lists individual field violations when several fail in one call.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs server-side failures (config, external, unexpected) without
//     leaking internals to the client.
//   - Renders a consistent JSON envelope: {"error": "...", "details": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindInvalidInput:
			return http.StatusBadRequest, errorResponse{Error: de.Message}
		case domain.KindInvalidCredential, domain.KindUnauthorized:
			return http.StatusUnauthorized, errorResponse{Error: de.Message}
		case domain.KindForbidden:
			return http.StatusForbidden, errorResponse{Error: de.Message}
		case domain.KindNotFound:
			return http.StatusNotFound, errorResponse{Error: de.Message}
		case domain.KindValidationFailed:
			return http.StatusUnprocessableEntity, errorResponse{Error: de.Message, Details: de.Details}
		case domain.KindConfig:
			// Fatal server misconfiguration, never a client problem.
			log.Error().Err(err).Str("path", c.Path()).Msg("configuration error")
			return http.StatusInternalServerError, errorResponse{Error: "server misconfigured"}
		case domain.KindExternal:
			log.Error().Err(err).Str("path", c.Path()).Msg("external backend failure")
			return http.StatusBadGateway, errorResponse{Error: de.Message}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
