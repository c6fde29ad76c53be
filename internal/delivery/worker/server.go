// Package worker runs the inbox worker: the Pub/Sub push endpoint and the RabbitMQ consumer.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"socialdesk/config"
	"socialdesk/internal/delivery"
	"socialdesk/internal/delivery/middleware"
	"socialdesk/internal/delivery/worker/handler"
	"socialdesk/internal/domain/lifecycle"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics `optional:"true"`
	PushHandler *handler.PushHandler
}

// NewEcho builds the worker's echo instance.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(middleware.NewMetricsMiddleware(params.Metrics).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}

	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	port := params.Cfg.HTTP.Port
	if params.Cfg.Worker != nil && params.Cfg.Worker.Port > 0 {
		port = params.Cfg.Worker.Port
	}

	srv := &workerServer{
		port:   port,
		logger: params.Logger,
		server: NewEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
