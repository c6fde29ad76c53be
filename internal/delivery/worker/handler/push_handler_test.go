package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialdesk/config"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"
	"socialdesk/internal/infra/pubsub"
	mockSvc "socialdesk/internal/mocks/service"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, env string) (*PushHandler, *mockSvc.MockInboundEventProcessor, *metrics.Metrics) {
	processor := mockSvc.NewMockInboundEventProcessor(t)
	m := metrics.NewIsolated("test")

	cfg := &config.Config{Queue: &config.QueueConfig{Provider: constants.QueueProviderGoogle}}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Processor: processor,
		Metrics:   m,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, processor, m
}

func pushBody(t *testing.T, event *service.InboundEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/test/subscriptions/inbox")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandlePush_ProcessorOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		processErr error
		wantStatus int
		wantResult string
	}{
		{name: "processed", wantStatus: http.StatusOK, wantResult: "processed"},
		{name: "malformed is acknowledged", processErr: errors.Wrap(usecase.ErrMalformedPayload, "no entry"), wantStatus: http.StatusOK, wantResult: "malformed"},
		{name: "transient failure is retried", processErr: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable, wantResult: "retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, processor, m := createTestPushHandler(t, constants.EnvDevelop)
			event := &service.InboundEvent{
				RequestID: "req-1",
				EventID:   "evt-1",
				Source:    "page",
				Payload:   json.RawMessage(`{"object":"page","entry":[]}`),
			}

			processor.EXPECT().
				ProcessInboundEvent(mock.Anything, mock.MatchedBy(func(e *service.InboundEvent) bool {
					return e.EventID == "evt-1" && e.RequestID == "req-1"
				})).
				Return(tt.processErr)

			rec := servePush(h, pushBody(t, event), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.InDelta(t, 1, testutil.ToFloat64(m.WorkerEvents.WithLabelValues(metricsSourcePush, tt.wantResult)), 0)
		})
	}
}

func TestHandlePush_UndecodableDataIsAcknowledged(t *testing.T) {
	h, processor, _ := createTestPushHandler(t, constants.EnvDevelop)

	rec := servePush(h, []byte(`{"message":{"data":"!!not-base64!!","messageId":"1"}}`), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	processor.AssertNotCalled(t, "ProcessInboundEvent", mock.Anything, mock.Anything)
}

func TestHandlePush_VerifiesTokenOutsideDevelop(t *testing.T) {
	event := &service.InboundEvent{EventID: "evt-2", Payload: json.RawMessage(`{"object":"page"}`)}

	t.Run("missing token", func(t *testing.T) {
		h, processor, _ := createTestPushHandler(t, constants.EnvProduction)

		rec := servePush(h, pushBody(t, event), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		processor.AssertNotCalled(t, "ProcessInboundEvent", mock.Anything, mock.Anything)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _, _ := createTestPushHandler(t, constants.EnvProduction)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, event), "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid google token", func(t *testing.T) {
		h, processor, _ := createTestPushHandler(t, constants.EnvProduction)
		var audience string
		h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		processor.EXPECT().ProcessInboundEvent(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, event), "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}
