package entity

import (
	"time"

	"github.com/google/uuid"
)

// SocialConnection stores the Meta credentials of one owner, one row per platform.
type SocialConnection struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Platform       Platform   `json:"platform"`
	PlatformUserID string     `json:"platform_user_id"`
	PageID         string     `json:"page_id"`
	AccessToken    string     `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
