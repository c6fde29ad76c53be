package postgres

import (
	"context"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// Upsert inserts the thread or, on conflict, refreshes the participant name and page id.
// The stored customer link is never cleared by an inbound event.
func (repo *conversationRepository) Upsert(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	conversationM := &model.ConversationModel{
		UserID:                conversation.UserID,
		Platform:              string(conversation.Platform),
		PageID:                conversation.PageID,
		ParticipantPlatformID: conversation.ParticipantPlatformID,
		ParticipantName:       conversation.ParticipantName,
		CustomerID:            conversation.CustomerID,
		LastMessageAt:         conversation.LastMessageAt,
	}

	err := repo.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "participant_platform_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"page_id":          gorm.Expr("EXCLUDED.page_id"),
				"participant_name": gorm.Expr("COALESCE(NULLIF(EXCLUDED.participant_name, ''), conversations.participant_name)"),
				"customer_id":      gorm.Expr("COALESCE(conversations.customer_id, EXCLUDED.customer_id)"),
			}),
		},
		clause.Returning{},
	).Create(conversationM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert conversation")
	}

	return toConversationDomain(conversationM), nil
}

func (repo *conversationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel
	err := repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&conversationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return toConversationDomain(&conversationM), nil
}

func (repo *conversationRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Conversation, error) {
	var conversationMs []model.ConversationModel
	err := paginate(repo.db.WithContext(ctx).Where("user_id = ?", userID), limit, offset).
		Order("last_message_at DESC, id DESC").
		Find(&conversationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationMs))
	for i := range conversationMs {
		conversations = append(conversations, toConversationDomain(&conversationMs[i]))
	}

	return conversations, nil
}

func (repo *conversationRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ? AND last_message_at < ?", id, at).
		Update("last_message_at", at).Error
	if err != nil {
		return errors.Wrap(err, "failed to touch conversation")
	}

	return nil
}

func (repo *conversationRepository) LinkCustomer(ctx context.Context, id, customerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Update("customer_id", customerID)

	return rowsAffectedOr(result, repository.ErrConversationNotFound, "failed to link customer")
}

func toConversationDomain(m *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:                    m.ID,
		UserID:                m.UserID,
		Platform:              entity.Platform(m.Platform),
		PageID:                m.PageID,
		ParticipantPlatformID: m.ParticipantPlatformID,
		ParticipantName:       m.ParticipantName,
		CustomerID:            m.CustomerID,
		LastMessageAt:         m.LastMessageAt,
		CreatedAt:             m.CreatedAt,
	}
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create skips rows whose platform_message_id already exists and reports them as ErrDuplicateMessage.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		UserID:            message.UserID,
		ConversationID:    message.ConversationID,
		PlatformMessageID: message.PlatformMessageID,
		Direction:         string(message.Direction),
		Text:              message.Text,
		SentAt:            message.SentAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "platform_message_id"}}, DoNothing: true}).
		Create(messageM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMessage
		}

		return errors.Wrap(result.Error, "failed to store message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateMessage
	}

	message.ID = messageM.ID

	return nil
}

func (repo *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.Message, error) {
	query := repo.db.WithContext(ctx).Where("conversation_id = ?", conversationID).Order("sent_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messageMs []model.MessageModel
	if err := query.Find(&messageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageMs))
	for _, m := range messageMs {
		messages = append(messages, &entity.Message{
			ID:                m.ID,
			UserID:            m.UserID,
			ConversationID:    m.ConversationID,
			PlatformMessageID: m.PlatformMessageID,
			Direction:         entity.MessageDirection(m.Direction),
			Text:              m.Text,
			SentAt:            m.SentAt,
		})
	}

	return messages, nil
}
