package middleware

import (
	"context"
	"log/slog"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by probes and scrapers and never logged.
//
//nolint:gochecknoglobals
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware logs one line per request. Successful requests are only logged in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if _, quiet := quietPaths[c.Path()]; !quiet {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// The error handler has not written the response yet when next returns an error.
	status := res.Status
	if err != nil && !res.Committed {
		status = statusFromError(err)
	}

	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		fields = append(fields, slog.String("user_id", userID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP Request", fields...)
}
