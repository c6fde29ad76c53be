package entity

import (
	"time"

	"github.com/google/uuid"
)

// MovementKind classifies why a stock movement was recorded.
type MovementKind string

const (
	MovementKindInitial    MovementKind = "initial"
	MovementKindOrder      MovementKind = "order"
	MovementKindAdjustment MovementKind = "adjustment"
	MovementKindArrival    MovementKind = "arrival"
	MovementKindCorrection MovementKind = "correction"
)

// StockMovement is one immutable row of the stock ledger.
type StockMovement struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"user_id"`
	ProductID      uuid.UUID    `json:"product_id"`
	ChangeQuantity int          `json:"change_quantity"`
	Reason         string       `json:"reason"`
	Kind           MovementKind `json:"kind"`
	OrderID        *uuid.UUID   `json:"order_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// StockHistoryEntry is a movement annotated with the stock level right after it was applied.
type StockHistoryEntry struct {
	Movement     StockMovement `json:"movement"`
	BalanceAfter int           `json:"balance_after"`
}

// MovementCursor identifies a position in a product's movement history, newest first.
type MovementCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
