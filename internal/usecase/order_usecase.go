package usecase

import (
	"context"
	"time"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is a requested order line. Prices are never taken from the client.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput holds the fields of a new order.
type CreateOrderInput struct {
	CustomerID      uuid.UUID        `json:"customer_id" validate:"required"`
	ConversationID  *uuid.UUID       `json:"conversation_id,omitempty"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes           string           `json:"notes" validate:"max=2000"`
	DeliveryService string           `json:"delivery_service" validate:"max=120"`
	TrackingNumber  string           `json:"tracking_number" validate:"max=120"`
	OrderDate       *time.Time       `json:"order_date,omitempty"`
}

// UpdateOrderInput replaces the items and delivery details of an order.
type UpdateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes           string           `json:"notes" validate:"max=2000"`
	DeliveryService string           `json:"delivery_service" validate:"max=120"`
	TrackingNumber  string           `json:"tracking_number" validate:"max=120"`
}

// OrderUsecase is the order lifecycle engine.
type OrderUsecase interface {
	// CreateOrder reserves stock for every line and stores the order atomically.
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	// UpdateOrder replaces the lines of a non-cancelled order, moving only the net stock difference.
	UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, input UpdateOrderInput) (*entity.Order, error)

	// TransitionStatus moves the order along the lifecycle. Cancelling restocks every line.
	TransitionStatus(ctx context.Context, userID, orderID uuid.UUID, status entity.OrderStatus, note string) (*entity.Order, error)

	// CancelWithNote cancels the order, then appends note in a separate step.
	// A failed append after the cancellation returns a PartialConsistencyWarning.
	CancelWithNote(ctx context.Context, userID, orderID uuid.UUID, note string) (*entity.Order, error)

	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error)

	// GetSalesSummary aggregates orders dated in [from, to).
	GetSalesSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.SalesSummary, error)
}
