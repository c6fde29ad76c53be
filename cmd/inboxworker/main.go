package main

import (
	"context"
	"log/slog"
	"os"

	"socialdesk/config"
	"socialdesk/internal/delivery"
	"socialdesk/internal/delivery/worker"
	"socialdesk/internal/infra/cache"
	logs "socialdesk/internal/infra/log"
	"socialdesk/internal/infra/meta"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/infra/persistence/postgres"
	"socialdesk/internal/infra/pubsub"
	"socialdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		cache.Module,
		injectService(),
		injectUsecase(),
		worker.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		pubsub.NewRabbitMQ,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			meta.NewGraphClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewInboxService,
			impl.NewInboundEventProcessor,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
