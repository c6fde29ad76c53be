package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware counts requests and observes latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.metrics == nil {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		method := c.Request().Method
		m.metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.metrics.HTTPLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusFromError predicts the status the error handler will write for err.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
