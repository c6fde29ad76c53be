package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/meta"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const eventReceived = "EVENT_RECEIVED"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Processor service.InboundEventProcessor
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// WebhookHandler receives Meta webhook deliveries.
type WebhookHandler struct {
	appSecret   string
	verifyToken string
	inline      bool
	publisher   service.EventPublisher
	processor   service.InboundEventProcessor
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		appSecret:   params.Config.Meta.AppSecret,
		verifyToken: params.Config.Meta.VerifyToken,
		inline:      params.Config.Queue.Provider == constants.QueueProviderInline,
		publisher:   params.Publisher,
		processor:   params.Processor,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Verify answers the subscription handshake by echoing hub.challenge.
func (h *WebhookHandler) Verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	if mode != "subscribe" || h.verifyToken == "" || token != h.verifyToken {
		h.logger.Warn("Webhook verification rejected", slog.String("mode", mode))

		return c.NoContent(http.StatusForbidden)
	}

	return c.String(http.StatusOK, c.QueryParam("hub.challenge"))
}

// Receive checks the signature over the raw body, queues the event and acknowledges it.
// Unsigned or mis-signed bodies never reach the queue.
func (h *WebhookHandler) Receive(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.count("unreadable")

		return c.NoContent(http.StatusBadRequest)
	}

	if !meta.VerifySignature(h.appSecret, body, c.Request().Header.Get(meta.SignatureHeader)) {
		logger.Warn("Webhook signature mismatch")
		h.count("rejected")

		return c.NoContent(http.StatusUnauthorized)
	}

	event := h.newEvent(c, logger, body)
	if err := h.publisher.PublishInboundEvent(ctx, event); err != nil {
		if h.inline {
			return h.inlineFailure(c, logger, event, err)
		}

		logger.Warn("Webhook enqueue failed, processing inline",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
		h.count("enqueue_failed")

		if err := h.processor.ProcessInboundEvent(ctx, event); err != nil {
			return h.inlineFailure(c, logger, event, err)
		}
		h.count("processed_inline")

		return c.String(http.StatusOK, eventReceived)
	}

	h.count("accepted")

	return c.String(http.StatusOK, eventReceived)
}

// inlineFailure acknowledges permanent failures and asks Meta to redeliver the others.
func (h *WebhookHandler) inlineFailure(c echo.Context, logger *slog.Logger, event *service.InboundEvent, err error) error {
	if errors.Is(err, usecase.ErrMalformedPayload) {
		logger.Warn("Dropping malformed webhook payload",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
		h.count("malformed")

		return c.String(http.StatusOK, eventReceived)
	}

	logger.Error("Webhook processing failed",
		slog.String("event_id", event.EventID),
		slog.Any("error", err),
	)
	h.count("failed")

	return c.NoContent(http.StatusInternalServerError)
}

// newEvent keys the event by the body hash so Meta redeliveries share one event id.
// A body that is not JSON is still queued; the processor drops it as malformed.
func (h *WebhookHandler) newEvent(c echo.Context, logger *slog.Logger, body []byte) *service.InboundEvent {
	sum := sha256.Sum256(body)

	var envelope struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Debug("Webhook body is not a JSON object", slog.Any("error", err))
	}

	return &service.InboundEvent{
		RequestID:  deliverycontext.GetRequestID(c),
		EventID:    hex.EncodeToString(sum[:]),
		Source:     envelope.Object,
		ReceivedAt: h.now().UTC(),
		Payload:    json.RawMessage(body),
	}
}

func (h *WebhookHandler) count(outcome string) {
	if h.metrics == nil {
		return
	}
	h.metrics.WebhookEvents.WithLabelValues(outcome).Inc()
}
