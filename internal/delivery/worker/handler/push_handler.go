// Package handler contains the worker's push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/infra/pubsub"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const metricsSourcePush = "push"

// tokenValidator checks a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes Pub/Sub push deliveries of inbound webhook events.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	processor      service.InboundEventProcessor
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Processor service.InboundEventProcessor
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.Queue != nil &&
		params.Config.Queue.Provider == constants.QueueProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		processor:      params.Processor,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

// HandlePush processes one push delivery. Pub/Sub redelivers on any non-2xx answer,
// so permanent failures are acknowledged with 200 and only transient ones get 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))
			h.count("unauthorized")

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))
		h.count("malformed")

		return c.NoContent(http.StatusOK)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode inbound event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)
		h.count("malformed")

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processor.ProcessInboundEvent(ctx, event); err != nil {
		if errors.Is(err, usecase.ErrMalformedPayload) {
			reqLogger.Warn("[Worker] Dropping malformed event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
			h.count("malformed")

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
		h.count("retry")
		h.metrics.CountError("worker")

		return c.NoContent(http.StatusServiceUnavailable)
	}

	h.count("processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) count(result string) {
	if h.metrics == nil {
		return
	}
	h.metrics.WorkerEvents.WithLabelValues(metricsSourcePush, result).Inc()
}

// extractRequestID prefers the id carried by the event, then the request header, then a new one.
func extractRequestID(ctx context.Context, event *service.InboundEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
