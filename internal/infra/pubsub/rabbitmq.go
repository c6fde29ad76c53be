package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

const (
	defaultRabbitRetryCount = 5
	defaultRabbitRetryDelay = 2 * time.Second
	defaultRabbitPrefetch   = 10
)

// RabbitMQClient owns one AMQP connection and channel with the inbox topology declared.
type RabbitMQClient struct {
	cfg    config.RabbitMQConfig
	logger *slog.Logger

	mu         sync.RWMutex
	connection *amqp.Connection
	channel    *amqp.Channel
	closing    bool

	ready     chan struct{}
	readyOnce sync.Once
}

// NewRabbitMQClient fills retry and prefetch defaults. Connect must be called before use.
func NewRabbitMQClient(cfg config.RabbitMQConfig, logger *slog.Logger) *RabbitMQClient {
	if cfg.RetryCount <= 0 {
		cfg.RetryCount = defaultRabbitRetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRabbitRetryDelay
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = defaultRabbitPrefetch
	}

	return &RabbitMQClient{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "rabbitmq")),
		ready:  make(chan struct{}),
	}
}

// Connect dials the broker, retrying RetryCount times, and declares the exchange, queue and binding.
func (r *RabbitMQClient) Connect(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= r.cfg.RetryCount; attempt++ {
		lastErr = r.dial()
		if lastErr == nil {
			r.readyOnce.Do(func() { close(r.ready) })
			r.logger.Info("Connected to RabbitMQ",
				slog.String("exchange", r.cfg.Exchange),
				slog.String("queue", r.cfg.Queue),
			)

			return nil
		}

		r.logger.Warn("RabbitMQ connection failed",
			slog.Int("attempt", attempt),
			slog.Int("maxAttempts", r.cfg.RetryCount),
			slog.Any("error", lastErr),
		)
		if attempt == r.cfg.RetryCount {
			break
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(r.cfg.RetryDelay):
		}
	}

	return errors.Wrap(lastErr, "failed to connect to RabbitMQ")
}

func (r *RabbitMQClient) dial() error {
	conn, err := amqp.Dial(r.cfg.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "open channel")
	}

	if err := r.declareTopology(ch); err != nil {
		ch.Close()
		conn.Close()

		return err
	}

	r.connection = conn
	r.channel = ch

	return nil
}

func (r *RabbitMQClient) declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(r.cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "declare exchange")
	}
	if _, err := ch.QueueDeclare(r.cfg.Queue, true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "declare queue")
	}
	if err := ch.QueueBind(r.cfg.Queue, r.cfg.RoutingKey, r.cfg.Exchange, false, nil); err != nil {
		return errors.Wrap(err, "bind queue")
	}

	return nil
}

// Ready is closed once the first Connect succeeds.
func (r *RabbitMQClient) Ready() <-chan struct{} {
	return r.ready
}

// Channel returns the current channel, or nil before Connect.
func (r *RabbitMQClient) Channel() *amqp.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.channel
}

// Config returns the effective broker settings.
func (r *RabbitMQClient) Config() config.RabbitMQConfig {
	return r.cfg
}

// IsConnected reports whether the connection is open.
func (r *RabbitMQClient) IsConnected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.connection != nil && !r.connection.IsClosed()
}

// Close closes the channel then the connection. Safe to call twice.
func (r *RabbitMQClient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closing {
		return nil
	}
	r.closing = true

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "close channel"))
		}
	}
	if r.connection != nil {
		if err := r.connection.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "close connection"))
		}
	}

	return joinErrors(errs)
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Errorf("%v; %v", errs[0], errs[1])
	}
}

// rabbitMQPublisher publishes inbound events as persistent messages.
type rabbitMQPublisher struct {
	client *RabbitMQClient
	logger *slog.Logger
}

// NewRabbitMQPublisher publishes to the client's exchange with its routing key
func NewRabbitMQPublisher(client *RabbitMQClient, logger *slog.Logger) service.EventPublisher {
	return &rabbitMQPublisher{client: client, logger: logger}
}

func (p *rabbitMQPublisher) PublishInboundEvent(_ context.Context, event *service.InboundEvent) error {
	ch := p.client.Channel()
	if ch == nil || !p.client.IsConnected() {
		return errors.New("no connection to RabbitMQ")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	cfg := p.client.Config()
	err = ch.Publish(cfg.Exchange, cfg.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.ReceivedAt,
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "publish inbound event")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("routing_key", cfg.RoutingKey),
	)

	return nil
}

// Close leaves the shared client open; its owner closes it.
func (p *rabbitMQPublisher) Close() error {
	return nil
}
