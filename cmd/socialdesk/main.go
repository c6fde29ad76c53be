package main

import (
	"context"
	"log/slog"
	"os"

	"socialdesk/config"
	"socialdesk/internal/delivery"
	"socialdesk/internal/delivery/api"
	"socialdesk/internal/delivery/api/router"
	"socialdesk/internal/infra/auth"
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
		pubsub.Module,
		injectService(),
		injectUsecase(),
		router.Module,
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			meta.NewGraphClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewConnectionService,
			impl.NewCustomerService,
			impl.NewProductService,
			impl.NewStockLedgerService,
			impl.NewOrderService,
			impl.NewInboxService,
			impl.NewInboundEventProcessor,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
