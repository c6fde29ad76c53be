package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the channel a customer or conversation originates from.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformManual    Platform = "manual"
)

// IsValid reports whether p is a known platform.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformManual:
		return true
	default:
		return false
	}
}

// Customer is a buyer known to the business.
type Customer struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Platform       Platform  `json:"platform"`
	PlatformUserID *string   `json:"platform_user_id,omitempty"` // Page-scoped sender id when promoted from the inbox.
	IsArchived     bool      `json:"is_archived"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Search          string
	Platform        Platform
	IncludeArchived bool
	Limit           int
	Offset          int
}
