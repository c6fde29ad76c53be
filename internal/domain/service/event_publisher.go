package service

import (
	"context"
	"encoding/json"
	"time"
)

// InboundEvent is a verified webhook delivery waiting to be ingested by the worker.
type InboundEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	EventID    string          `json:"event_id"`
	Source     string          `json:"source"` // Webhook object, e.g. "page" or "instagram"
	ReceivedAt time.Time       `json:"received_at"`
	Payload    json.RawMessage `json:"payload"` // Raw, signature-verified webhook body
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInboundEvent hands a webhook event to the worker queue.
	PublishInboundEvent(ctx context.Context, event *InboundEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// InboundEventProcessor consumes queued webhook events.
type InboundEventProcessor interface {
	ProcessInboundEvent(ctx context.Context, event *InboundEvent) error
}
