package worker

import (
	"socialdesk/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// Module provides the worker deliveries
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewPushHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			NewRabbitMQConsumer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
