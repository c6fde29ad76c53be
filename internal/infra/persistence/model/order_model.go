package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_orders_user_number,priority:1"`
	OrderNumber     int64      `gorm:"not null;uniqueIndex:uq_orders_user_number,priority:2"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ConversationID  *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	TotalAmount     int64      `gorm:"not null;default:0"`
	DeliveryService string     `gorm:"type:varchar(120)"`
	TrackingNumber  string     `gorm:"type:varchar(120)"`
	Notes           string     `gorm:"type:text"`
	OrderDate       time.Time  `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"not null"`
	SellingPrice  int64     `gorm:"not null"`
	PurchasePrice int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderCounterModel holds the last order number issued per user.
type OrderCounterModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	LastNumber int64     `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderCounterModel) TableName() string {
	return "order_counters"
}
