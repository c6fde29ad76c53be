package impl

import (
	"context"
	"log/slog"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"go.uber.org/fx"
)

// defaultDedupeTTL bounds how long an event id is remembered. Meta stops redelivering well before.
const defaultDedupeTTL = 24 * time.Hour

type inboundEventProcessor struct {
	inbox       usecase.InboxUsecase
	idempotency service.IdempotencyStore
	dedupeTTL   time.Duration
	logger      *slog.Logger
}

// InboundEventProcessorParams holds dependencies for the webhook event consumer, injected by Fx.
type InboundEventProcessorParams struct {
	fx.In

	Inbox       usecase.InboxUsecase
	Idempotency service.IdempotencyStore `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInboundEventProcessor ingests queued webhook events through the inbox.
// The idempotency store only short-circuits redeliveries; uniqueness of platform message ids
// is what keeps ingestion exactly-once.
func NewInboundEventProcessor(params InboundEventProcessorParams) service.InboundEventProcessor {
	ttl := defaultDedupeTTL
	if params.Config != nil && params.Config.Worker != nil && params.Config.Worker.DedupeTTL > 0 {
		ttl = params.Config.Worker.DedupeTTL
	}

	return &inboundEventProcessor{
		inbox:       params.Inbox,
		idempotency: params.Idempotency,
		dedupeTTL:   ttl,
		logger:      params.Logger,
	}
}

func (p *inboundEventProcessor) ProcessInboundEvent(ctx context.Context, event *service.InboundEvent) error {
	if event == nil || len(event.Payload) == 0 {
		return errors.Wrap(usecase.ErrMalformedPayload, "empty inbound event")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("eventID", event.EventID),
		slog.String("source", event.Source),
	)

	if p.idempotency != nil && event.EventID != "" {
		seen, err := p.idempotency.Seen(ctx, event.EventID)
		if err != nil {
			logger.Warn("Idempotency lookup failed, processing anyway", slog.Any("error", err))
		} else if seen {
			logger.Debug("Inbound event already processed")

			return nil
		}
	}

	report, err := p.inbox.ProcessWebhookEvent(ctx, event.Payload)
	if err != nil {
		return err
	}

	if p.idempotency != nil && event.EventID != "" {
		if err := p.idempotency.MarkProcessed(ctx, event.EventID, p.dedupeTTL); err != nil {
			logger.Warn("Failed to mark inbound event processed", slog.Any("error", err))
		}
	}

	logger.Info("Inbound event processed",
		slog.Int("stored", report.Stored),
		slog.Int("duplicates", report.Duplicates),
		slog.Int("dropped", report.Dropped),
		slog.Int("skipped", report.Skipped),
	)

	return nil
}
