// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product does not exist or belongs to another user.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines product persistence. Stock quantity is written only by UpdateStockQuantity,
// which the stock ledger calls after locking the row.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product owned by userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error)

	// FindByIDsForUpdate locks every listed product in ascending id order.
	// Returns ErrProductNotFound if any id is missing.
	FindByIDsForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// List returns products matching the filter, ordered by name.
	List(ctx context.Context, userID uuid.UUID, filter entity.ProductFilter) ([]*entity.Product, error)

	// UpdateDetails saves name, category and prices.
	UpdateDetails(ctx context.Context, product *entity.Product) error

	// SetArchived archives or restores a product.
	SetArchived(ctx context.Context, userID, id uuid.UUID, archived bool) error

	// UpdateStockQuantity overwrites the on-hand count.
	UpdateStockQuantity(ctx context.Context, id uuid.UUID, quantity int) error
}
