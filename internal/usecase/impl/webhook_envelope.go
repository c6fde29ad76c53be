package impl

import (
	"encoding/json"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"
)

// Meta webhook objects that carry direct messages.
const (
	webhookObjectPage      = "page"
	webhookObjectInstagram = "instagram"
)

type webhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID        string             `json:"id"`
	Time      int64              `json:"time"`
	Messaging []webhookMessaging `json:"messaging"`
}

type webhookMessaging struct {
	Sender    webhookParty    `json:"sender"`
	Recipient webhookParty    `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *webhookMessage `json:"message,omitempty"`
}

type webhookParty struct {
	ID string `json:"id"`
}

type webhookMessage struct {
	MID    string `json:"mid"`
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo"`
}

// normalizeWebhook turns a Meta envelope into inbound messages. skipped counts echoes,
// events without a message id and objects that carry no direct messages.
func normalizeWebhook(payload []byte) (messages []usecase.InboundMessage, skipped int, err error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, 0, errors.Wrap(errors.Join(usecase.ErrMalformedPayload, err), "decode webhook")
	}
	if envelope.Object == "" {
		return nil, 0, errors.Wrap(usecase.ErrMalformedPayload, "webhook object is missing")
	}

	var platform entity.Platform
	switch envelope.Object {
	case webhookObjectPage:
		platform = entity.PlatformFacebook
	case webhookObjectInstagram:
		platform = entity.PlatformInstagram
	default:
		for _, entry := range envelope.Entry {
			skipped += len(entry.Messaging)
		}

		return nil, skipped, nil
	}

	for _, entry := range envelope.Entry {
		for _, event := range entry.Messaging {
			if event.Message == nil || event.Message.MID == "" || event.Message.IsEcho || event.Sender.ID == "" {
				skipped++

				continue
			}

			pageID := entry.ID
			if pageID == "" {
				pageID = event.Recipient.ID
			}

			sentAt := time.Now().UTC()
			if event.Timestamp > 0 {
				sentAt = time.UnixMilli(event.Timestamp).UTC()
			}

			messages = append(messages, usecase.InboundMessage{
				Platform:           platform,
				PageID:             pageID,
				CustomerPlatformID: event.Sender.ID,
				PlatformMessageID:  event.Message.MID,
				Text:               event.Message.Text,
				Timestamp:          sentAt,
			})
		}
	}

	return messages, skipped, nil
}
