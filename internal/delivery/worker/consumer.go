package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"socialdesk/internal/delivery"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/infra/pubsub"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/fx"
)

const (
	consumerTag         = "inbox-worker"
	metricsSourceRabbit = "rabbitmq"
)

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Client    *pubsub.RabbitMQClient `optional:"true"`
	Processor service.InboundEventProcessor
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

type rabbitConsumer struct {
	client    *pubsub.RabbitMQClient
	processor service.InboundEventProcessor
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewRabbitMQConsumer consumes inbound events from the RabbitMQ queue.
// Serve returns immediately when no RabbitMQ client is configured.
func NewRabbitMQConsumer(params ConsumerParams) delivery.Delivery {
	return &rabbitConsumer{
		client:    params.Client,
		processor: params.Processor,
		metrics:   params.Metrics,
		logger:    params.Logger.With(slog.String("component", "rabbitmq_consumer")),
	}
}

// Serve acknowledges each message manually and stops when the channel closes.
func (r *rabbitConsumer) Serve(ctx context.Context) error {
	if r.client == nil {
		return nil
	}

	// Deliveries are served before fx runs the OnStart hook that connects.
	select {
	case <-ctx.Done():
		return nil
	case <-r.client.Ready():
	}

	ch := r.client.Channel()
	if ch == nil {
		return errors.New("rabbitmq channel is not open")
	}

	cfg := r.client.Config()
	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		return errors.Wrap(err, "set prefetch")
	}

	deliveries, err := ch.Consume(cfg.Queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "start consuming")
	}

	r.logger.Info("Consuming inbound events", slog.String("queue", cfg.Queue), slog.Int("prefetch", cfg.Prefetch))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				r.logger.Info("Delivery channel closed")

				return nil
			}
			r.handle(ctx, d)
		}
	}
}

// handle rejects undecodable and malformed messages without requeue and requeues transient failures.
func (r *rabbitConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var event service.InboundEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		r.logger.Error("Failed to decode inbound event", slog.String("message_id", d.MessageId), slog.Any("error", err))
		r.count("malformed")
		r.settle(d.Reject(false))

		return
	}
	if event.EventID == "" {
		event.EventID = d.MessageId
	}
	if event.RequestID == "" {
		if requestID, ok := d.Headers["request_id"].(string); ok {
			event.RequestID = requestID
		} else {
			event.RequestID = uuid.New().String()
		}
	}

	reqLogger := r.logger.With(slog.String("request_id", event.RequestID))
	ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := r.processor.ProcessInboundEvent(ctx, &event); err != nil {
		if errors.Is(err, usecase.ErrMalformedPayload) {
			reqLogger.Warn("Dropping malformed event", slog.String("event_id", event.EventID), slog.Any("error", err))
			r.count("malformed")
			r.settle(d.Reject(false))

			return
		}

		reqLogger.Error("Failed to process event, requeueing",
			slog.String("event_id", event.EventID),
			slog.Bool("redelivered", d.Redelivered),
			slog.Any("error", err),
		)
		r.count("retry")
		r.metrics.CountError("worker")
		r.settle(d.Nack(false, true))

		return
	}

	r.count("processed")
	r.settle(d.Ack(false))
}

func (r *rabbitConsumer) settle(err error) {
	if err != nil {
		r.logger.Error("Failed to settle delivery", slog.Any("error", err))
	}
}

func (r *rabbitConsumer) count(result string) {
	if r.metrics == nil {
		return
	}
	r.metrics.WorkerEvents.WithLabelValues(metricsSourceRabbit, result).Inc()
}
