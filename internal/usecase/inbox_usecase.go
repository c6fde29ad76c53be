package usecase

import (
	"context"
	"encoding/json"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

// ErrMalformedPayload marks webhook bodies that can never be processed. Redelivery cannot fix them.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// InboundMessage is a normalized message received from Meta.
type InboundMessage struct {
	Platform           entity.Platform
	PageID             string
	CustomerPlatformID string
	PlatformMessageID  string
	Text               string
	Timestamp          time.Time
}

// InboundResult tells what happened to an inbound message.
type InboundResult string

const (
	InboundStored    InboundResult = "stored"
	InboundDuplicate InboundResult = "duplicate"
	InboundDropped   InboundResult = "dropped" // no connection owns the page
)

// WebhookReport summarizes the processing of one webhook payload.
type WebhookReport struct {
	Stored     int
	Duplicates int
	Dropped    int
	Skipped    int // echoes and non-message events
}

// PromoteInput holds the customer fields used when promoting a prospect.
type PromoteInput struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"max=50"`
	Address  string `json:"address" validate:"max=1000"`
}

// InboxUsecase ingests and answers Meta direct messages.
type InboxUsecase interface {
	// OnInboundMessage stores one message. Duplicates are absorbed without error.
	OnInboundMessage(ctx context.Context, msg InboundMessage) (InboundResult, error)

	// ProcessWebhookEvent decodes a verified webhook body and ingests every message it carries.
	// Malformed payloads return an error matching ErrMalformedPayload; other errors are retryable.
	ProcessWebhookEvent(ctx context.Context, payload json.RawMessage) (*WebhookReport, error)

	ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Conversation, error)

	// GetConversation returns the conversation with its messages ordered by sent_at.
	GetConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error)

	// SendMessage sends text through the Graph API and stores it on success. Not retried.
	SendMessage(ctx context.Context, userID, conversationID uuid.UUID, text string) (*entity.Message, error)

	// PromoteProspect creates a customer from a prospect conversation and links them.
	PromoteProspect(ctx context.Context, userID, conversationID uuid.UUID, input PromoteInput) (*entity.Customer, error)
}
