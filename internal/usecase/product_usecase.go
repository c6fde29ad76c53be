package usecase

import (
	"context"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput holds the fields of a new product.
type CreateProductInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=120"`
	PurchasePrice int64   `json:"purchase_price" validate:"gte=0"`
	SellingPrice  int64   `json:"selling_price" validate:"gte=0"`
	InitialStock  int     `json:"initial_stock" validate:"gte=0"`
}

// UpdateProductInput holds the editable product fields. Stock is not one of them.
type UpdateProductInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=120"`
	PurchasePrice int64   `json:"purchase_price" validate:"gte=0"`
	SellingPrice  int64   `json:"selling_price" validate:"gte=0"`
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	// CreateProduct stores the product and records its initial stock as a ledger movement.
	CreateProduct(ctx context.Context, userID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	SetArchived(ctx context.Context, userID, productID uuid.UUID, archived bool) (*entity.Product, error)
	GetProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, userID uuid.UUID, filter entity.ProductFilter) ([]*entity.Product, error)
}
