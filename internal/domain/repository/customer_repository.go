package repository

import (
	"context"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when a customer does not exist or belongs to another user.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when a platform user is already linked to a customer.
	ErrDuplicateCustomer = errors.New("customer already exists for this platform user")
)

// CustomerRepository defines customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error)

	// FindByPlatformUser resolves the customer linked to a platform sender id.
	FindByPlatformUser(ctx context.Context, userID uuid.UUID, platform entity.Platform, platformUserID string) (*entity.Customer, error)

	List(ctx context.Context, userID uuid.UUID, filter entity.CustomerFilter) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	SetArchived(ctx context.Context, userID, id uuid.UUID, archived bool) error
}
