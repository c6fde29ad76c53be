package repository

import (
	"context"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// StockMovementRepository is append-only: there is no update or delete.
type StockMovementRepository interface {
	// Create appends a movement.
	Create(ctx context.Context, movement *entity.StockMovement) error

	// Latest returns the cursor of the newest movement of a product, or nil when there is none.
	Latest(ctx context.Context, productID uuid.UUID) (*entity.MovementCursor, error)

	// ListBefore returns up to limit movements at or older than cursor, newest first.
	// When inclusive is false the movement at cursor itself is skipped.
	ListBefore(ctx context.Context, productID uuid.UUID, cursor entity.MovementCursor, inclusive bool, limit int) ([]*entity.StockMovement, error)

	// SumByProduct returns the sum of all change quantities of a product.
	SumByProduct(ctx context.Context, productID uuid.UUID) (int, error)

	// ListByOrder returns the movements tied to an order, oldest first.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.StockMovement, error)
}
