package impl

import (
	"context"
	"strings"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) usecase.CustomerUsecase {
	return &customerService{customerRepo: customerRepo}
}

func (srv *customerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{UserID: userID}
	if err := applyCustomerInput(customer, input); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, translateError(err, "failed to create customer")
	}

	return customer, nil
}

func (srv *customerService) UpdateCustomer(
	ctx context.Context,
	userID, customerID uuid.UUID,
	input usecase.CustomerInput,
) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, userID, customerID)
	if err != nil {
		return nil, translateError(err, "failed to load customer")
	}

	// A customer promoted from the inbox keeps its platform.
	if customer.PlatformUserID != nil && input.Platform != "" && input.Platform != customer.Platform {
		return nil, domainerrors.ErrInvalidState.WithDetails("platform of a linked customer cannot change")
	}
	if input.Platform == "" {
		input.Platform = customer.Platform
	}
	if err := applyCustomerInput(customer, input); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, translateError(err, "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) SetArchived(ctx context.Context, userID, customerID uuid.UUID, archived bool) (*entity.Customer, error) {
	if err := srv.customerRepo.SetArchived(ctx, userID, customerID, archived); err != nil {
		return nil, translateError(err, "failed to archive customer")
	}

	return srv.GetCustomer(ctx, userID, customerID)
}

func (srv *customerService) GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, userID, customerID)
	if err != nil {
		return nil, translateError(err, "failed to get customer")
	}

	return customer, nil
}

func (srv *customerService) ListCustomers(ctx context.Context, userID uuid.UUID, filter entity.CustomerFilter) ([]*entity.Customer, error) {
	if filter.Platform != "" && !filter.Platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown platform")
	}

	customers, err := srv.customerRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, translateError(err, "failed to list customers")
	}

	return customers, nil
}

func applyCustomerInput(customer *entity.Customer, input usecase.CustomerInput) error {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}

	platform := input.Platform
	if platform == "" {
		platform = entity.PlatformManual
	}
	if !platform.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown platform")
	}

	customer.FullName = name
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Address = strings.TrimSpace(input.Address)
	customer.Platform = platform

	return nil
}
