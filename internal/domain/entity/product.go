// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item the business sells. Prices are integer amounts in the smallest currency unit.
type Product struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Category      *string   `json:"category,omitempty"`
	PurchasePrice int64     `json:"purchase_price"`
	SellingPrice  int64     `json:"selling_price"`
	StockQuantity int       `json:"stock_quantity"` // Authoritative on-hand count, changed only through the stock ledger.
	IsArchived    bool      `json:"is_archived"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Search          string
	Category        string
	IncludeArchived bool
	Limit           int
	Offset          int
}
