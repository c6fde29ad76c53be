package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"socialdesk/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage mirrors the body Google Pub/Sub posts to push endpoints.
// The local publisher emits the same shape so the worker has a single decoding path.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every published event for filtering and tracing.
func eventAttributes(event *service.InboundEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"source":   event.Source,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps event the way Pub/Sub push delivery does.
func NewPushMessage(event *service.InboundEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// DecodeEvent extracts the inbound event carried by the push message.
func (m *PushMessage) DecodeEvent() (*service.InboundEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event service.InboundEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode inbound event")
	}
	if event.EventID == "" {
		event.EventID = m.Message.MessageID
	}
	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes["request_id"]
	}

	return &event, nil
}
