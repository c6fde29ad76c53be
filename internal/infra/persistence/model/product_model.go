package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Category      *string   `gorm:"type:varchar(120)"`
	PurchasePrice int64     `gorm:"not null;default:0"`
	SellingPrice  int64     `gorm:"not null;default:0"`
	StockQuantity int       `gorm:"not null;default:0"`
	IsArchived    bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// StockMovementModel is the GORM-specific struct for the append-only 'stock_movements' table.
type StockMovementModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_stock_movements_product_created,priority:1"`
	ChangeQuantity int        `gorm:"not null"`
	Reason         string     `gorm:"type:text;not null"`
	Kind           string     `gorm:"type:varchar(20);not null"`
	OrderID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null;index:idx_stock_movements_product_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (StockMovementModel) TableName() string {
	return "stock_movements"
}
