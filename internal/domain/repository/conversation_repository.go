package repository

import (
	"context"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrConversationNotFound is returned when a conversation does not exist or belongs to another user.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrDuplicateMessage is returned when a platform message id was already stored.
	ErrDuplicateMessage = errors.New("message already stored")
)

// ConversationRepository defines inbox thread persistence.
type ConversationRepository interface {
	// Upsert returns the conversation for (user, platform, participant), creating it when missing.
	Upsert(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Conversation, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Conversation, error)

	// Touch moves last_message_at forward, never backward.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error

	// LinkCustomer attaches a customer to a prospect conversation.
	LinkCustomer(ctx context.Context, id, customerID uuid.UUID) error
}

// MessageRepository defines inbox message persistence.
type MessageRepository interface {
	// Create stores a message. Returns ErrDuplicateMessage when platform_message_id already exists.
	Create(ctx context.Context, message *entity.Message) error

	// ListByConversation returns messages ordered by sent_at.
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.Message, error)
}
