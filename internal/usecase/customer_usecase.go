package usecase

import (
	"context"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerInput holds the editable customer fields.
type CustomerInput struct {
	FullName string          `json:"full_name" validate:"required,max=255"`
	Phone    string          `json:"phone" validate:"max=50"`
	Address  string          `json:"address" validate:"max=1000"`
	Platform entity.Platform `json:"platform" validate:"omitempty,oneof=facebook instagram manual"`
}

// CustomerUsecase manages customers.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, userID uuid.UUID, input CustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, userID, customerID uuid.UUID, input CustomerInput) (*entity.Customer, error)
	SetArchived(ctx context.Context, userID, customerID uuid.UUID, archived bool) (*entity.Customer, error)
	GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error)
	ListCustomers(ctx context.Context, userID uuid.UUID, filter entity.CustomerFilter) ([]*entity.Customer, error)
}
