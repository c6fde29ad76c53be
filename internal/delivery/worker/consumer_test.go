package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"socialdesk/internal/domain/service"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/metrics"
	mockSvc "socialdesk/internal/mocks/service"
	"socialdesk/internal/usecase"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingAcknowledger remembers how a delivery was settled.
type recordingAcknowledger struct {
	acked    bool
	nacked   bool
	rejected bool
	requeue  bool
}

func (a *recordingAcknowledger) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeue = requeue

	return nil
}

func (a *recordingAcknowledger) Reject(_ uint64, requeue bool) error {
	a.rejected = true
	a.requeue = requeue

	return nil
}

func createTestConsumer(t *testing.T) (*rabbitConsumer, *mockSvc.MockInboundEventProcessor) {
	processor := mockSvc.NewMockInboundEventProcessor(t)
	consumer := NewRabbitMQConsumer(ConsumerParams{
		Processor: processor,
		Metrics:   metrics.NewIsolated("test"),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return consumer.(*rabbitConsumer), processor
}

func newDelivery(t *testing.T, ack amqp.Acknowledger, event *service.InboundEvent) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	return amqp.Delivery{
		Acknowledger: ack,
		MessageId:    "msg-1",
		Headers:      amqp.Table{"request_id": "req-9"},
		Body:         body,
	}
}

func TestRabbitConsumer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		processErr error
		check      func(t *testing.T, ack *recordingAcknowledger)
	}{
		{
			name: "processed is acked",
			check: func(t *testing.T, ack *recordingAcknowledger) {
				assert.True(t, ack.acked)
			},
		},
		{
			name:       "malformed is rejected without requeue",
			processErr: errors.Wrap(usecase.ErrMalformedPayload, "no entry"),
			check: func(t *testing.T, ack *recordingAcknowledger) {
				assert.True(t, ack.rejected)
				assert.False(t, ack.requeue)
			},
		},
		{
			name:       "transient failure is requeued",
			processErr: errors.New("database unavailable"),
			check: func(t *testing.T, ack *recordingAcknowledger) {
				assert.True(t, ack.nacked)
				assert.True(t, ack.requeue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, processor := createTestConsumer(t)
			ack := &recordingAcknowledger{}

			processor.EXPECT().
				ProcessInboundEvent(mock.Anything, mock.MatchedBy(func(e *service.InboundEvent) bool {
					return e.EventID == "msg-1" && e.RequestID == "req-9"
				})).
				Return(tt.processErr)

			consumer.handle(context.Background(), newDelivery(t, ack, &service.InboundEvent{
				Payload: json.RawMessage(`{"object":"page"}`),
			}))

			tt.check(t, ack)
		})
	}
}

func TestRabbitConsumer_UndecodableBodyIsRejected(t *testing.T) {
	consumer, processor := createTestConsumer(t)
	ack := &recordingAcknowledger{}

	consumer.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("not json")})

	assert.True(t, ack.rejected)
	assert.False(t, ack.requeue)
	processor.AssertNotCalled(t, "ProcessInboundEvent", mock.Anything, mock.Anything)
}

func TestRabbitConsumer_ServeWithoutClient(t *testing.T) {
	consumer, _ := createTestConsumer(t)

	assert.NoError(t, consumer.Serve(context.Background()))
}
