package repository

import (
	"context"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order does not exist or belongs to another user.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines order persistence. Orders are always loaded with their items.
type OrderRepository interface {
	// NextOrderNumber atomically increments and returns the per-user order counter.
	NextOrderNumber(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists the order and its items.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate locks the order row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateNotes overwrites the notes of an order.
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error

	// UpdateDetails saves delivery fields, notes and total amount.
	UpdateDetails(ctx context.Context, order *entity.Order) error

	// ReplaceItems deletes the current items of the order and inserts items.
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error

	// ListBetween returns orders with order_date in [from, to).
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Order, error)
}
