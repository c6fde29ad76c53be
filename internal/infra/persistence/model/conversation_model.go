package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel is the GORM-specific struct for the 'conversations' table.
type ConversationModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_conversations_participant,priority:1"`
	Platform              string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_conversations_participant,priority:2"`
	PageID                string     `gorm:"type:varchar(100);not null"`
	ParticipantPlatformID string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_conversations_participant,priority:3"`
	ParticipantName       string     `gorm:"type:varchar(255)"`
	CustomerID            *uuid.UUID `gorm:"type:uuid;index"`
	LastMessageAt         time.Time  `gorm:"not null;index"`
	CreatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ConversationID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_sent,priority:1"`
	PlatformMessageID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Direction         string    `gorm:"type:varchar(10);not null"`
	Text              string    `gorm:"type:text"`
	SentAt            time.Time `gorm:"not null;index:idx_messages_conversation_sent,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
