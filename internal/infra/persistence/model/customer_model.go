package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(50)"`
	Address        string    `gorm:"type:text"`
	Platform       string    `gorm:"type:varchar(20);not null;default:'manual'"`
	PlatformUserID *string   `gorm:"type:varchar(100)"`
	IsArchived     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
