// Package middleware holds the API-only middlewares: authentication and error rendering.
package middleware

import (
	"log/slog"
	"net/http"

	"socialdesk/internal/delivery/api/response"
	deliverycontext "socialdesk/internal/delivery/context"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewErrorMiddleware(logger *slog.Logger, m *metrics.Metrics) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		metrics: m,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		_ = response.HandleAppError(c, err)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.metrics.CountError("api")

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
