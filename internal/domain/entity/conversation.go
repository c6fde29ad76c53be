package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageDirection tells whether a message was received from or sent to the participant.
type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

// Conversation is an inbox thread with one participant on one platform.
// A nil CustomerID means the participant is still a prospect.
type Conversation struct {
	ID                    uuid.UUID  `json:"id"`
	UserID                uuid.UUID  `json:"user_id"`
	Platform              Platform   `json:"platform"`
	PageID                string     `json:"page_id"`
	ParticipantPlatformID string     `json:"participant_platform_id"`
	ParticipantName       string     `json:"participant_name"`
	CustomerID            *uuid.UUID `json:"customer_id,omitempty"`
	LastMessageAt         time.Time  `json:"last_message_at"`
	CreatedAt             time.Time  `json:"created_at"`
	Messages              []Message  `json:"messages,omitempty"`
}

// IsProspect reports whether the conversation is not yet linked to a customer.
func (c *Conversation) IsProspect() bool {
	return c.CustomerID == nil
}

// Message is a single inbox message.
type Message struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	ConversationID    uuid.UUID        `json:"conversation_id"`
	PlatformMessageID string           `json:"platform_message_id"`
	Direction         MessageDirection `json:"direction"`
	Text              string           `json:"text"`
	SentAt            time.Time        `json:"sent_at"`
}
