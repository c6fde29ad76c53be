package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialConnectionModel is the GORM-specific struct for the 'social_connections' table.
type SocialConnectionModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_social_connections_user_platform,priority:1"`
	Platform       string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_social_connections_user_platform,priority:2"`
	PlatformUserID string     `gorm:"type:varchar(100);not null"`
	PageID         string     `gorm:"type:varchar(100);index"`
	AccessToken    string     `gorm:"type:text;not null"`
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialConnectionModel) TableName() string {
	return "social_connections"
}
