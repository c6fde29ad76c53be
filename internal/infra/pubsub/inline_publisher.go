package pubsub

import (
	"context"

	"socialdesk/internal/domain/service"
)

// inlinePublisher processes events in the calling request. Used when no worker runs.
type inlinePublisher struct {
	processor service.InboundEventProcessor
}

// NewInlinePublisher hands every event straight to processor
func NewInlinePublisher(processor service.InboundEventProcessor) service.EventPublisher {
	return &inlinePublisher{processor: processor}
}

func (p *inlinePublisher) PublishInboundEvent(ctx context.Context, event *service.InboundEvent) error {
	return p.processor.ProcessInboundEvent(ctx, event)
}

func (p *inlinePublisher) Close() error {
	return nil
}
