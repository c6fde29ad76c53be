package pubsub

import (
	"context"
	"log/slog"

	"socialdesk/config"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Processor service.InboundEventProcessor `optional:"true"`
	RabbitMQ  *RabbitMQClient               `optional:"true"`
}

// NewEventPublisher selects the queue implementation named by queue.provider
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Queue
	logger := params.Logger

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.QueueProviderInline:
		if params.Processor == nil {
			return nil, errors.New("inline provider requires an inbound event processor")
		}
		logger.Info("Processing webhook events inline")

		publisher = NewInlinePublisher(params.Processor)

	case constants.QueueProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.QueueProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.QueueProviderRabbitMQ:
		if params.RabbitMQ == nil {
			return nil, errors.New("rabbitmq settings are required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher",
			slog.String("exchange", params.RabbitMQ.Config().Exchange),
		)

		publisher = NewRabbitMQPublisher(params.RabbitMQ, logger)

	default:
		return nil, errors.Errorf("unknown queue provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewRabbitMQ connects on start when the rabbitmq provider is selected. It returns nil otherwise.
func NewRabbitMQ(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*RabbitMQClient, error) {
	if cfg.Queue.Provider != constants.QueueProviderRabbitMQ {
		return nil, nil
	}
	if cfg.Queue.RabbitMQ == nil || cfg.Queue.RabbitMQ.URL == "" {
		return nil, errors.New("queue.rabbitmq.url is required for rabbitmq provider")
	}

	client := NewRabbitMQClient(*cfg.Queue.RabbitMQ, logger)
	lc.Append(fx.Hook{
		OnStart: client.Connect,
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Module provides the queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRabbitMQ,
		NewEventPublisher,
	),
)
