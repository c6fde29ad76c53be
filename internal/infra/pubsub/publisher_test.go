package pubsub

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/constants"
	"socialdesk/internal/domain/service"
	mockSvc "socialdesk/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.InboundEvent {
	return &service.InboundEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Source:     "page",
		ReceivedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Payload:    json.RawMessage(`{"object":"page","entry":[]}`),
	}
}

func TestPushMessage_RoundTripsEvent(t *testing.T) {
	event := testEvent()

	msg, err := NewPushMessage(event, localSubscription)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])
	assert.Equal(t, "page", msg.Message.Attributes["source"])

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.JSONEq(t, string(event.Payload), string(decoded.Payload))
}

func TestPushMessage_DecodeEventRejectsBadData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeEvent()

	assert.Error(t, err)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	require.NoError(t, publisher.PublishInboundEvent(t.Context(), testEvent()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)

	event, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.EventID)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	assert.Error(t, publisher.PublishInboundEvent(t.Context(), testEvent()))
}

func TestInlinePublisher(t *testing.T) {
	processor := mockSvc.NewMockInboundEventProcessor(t)
	event := testEvent()
	processor.EXPECT().ProcessInboundEvent(mock.Anything, event).Return(errors.New("db down")).Once()

	err := NewInlinePublisher(processor).PublishInboundEvent(t.Context(), event)

	assert.EqualError(t, err, "db down")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name      string
		queue     *config.QueueConfig
		processor bool
		wantErr   bool
	}{
		{name: "inline", queue: &config.QueueConfig{Provider: constants.QueueProviderInline}, processor: true},
		{name: "inline without processor", queue: &config.QueueConfig{Provider: constants.QueueProviderInline}, wantErr: true},
		{name: "local", queue: &config.QueueConfig{Provider: constants.QueueProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", queue: &config.QueueConfig{Provider: constants.QueueProviderLocal}, wantErr: true},
		{name: "google without topic", queue: &config.QueueConfig{Provider: constants.QueueProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "rabbitmq without client", queue: &config.QueueConfig{Provider: constants.QueueProviderRabbitMQ}, wantErr: true},
		{name: "unknown", queue: &config.QueueConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    t.Context(),
				Config: &config.Config{Queue: tt.queue},
				Logger: newDiscardLogger(),
			}
			if tt.processor {
				params.Processor = mockSvc.NewMockInboundEventProcessor(t)
			}

			publisher, err := NewEventPublisher(params)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNewRabbitMQ_SkippedForOtherProviders(t *testing.T) {
	client, err := NewRabbitMQ(fxtest.NewLifecycle(t), &config.Config{
		Queue: &config.QueueConfig{Provider: constants.QueueProviderLocal},
	}, newDiscardLogger())

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestRabbitMQPublisher_RequiresConnection(t *testing.T) {
	client := NewRabbitMQClient(config.RabbitMQConfig{URL: "amqp://localhost:5672/"}, newDiscardLogger())
	publisher := NewRabbitMQPublisher(client, newDiscardLogger())

	assert.Error(t, publisher.PublishInboundEvent(t.Context(), testEvent()))
	assert.Equal(t, defaultRabbitPrefetch, client.Config().Prefetch)
	assert.NoError(t, client.Close())
}
