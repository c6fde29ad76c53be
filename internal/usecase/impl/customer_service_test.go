package impl

import (
	"context"
	"testing"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	mockRepo "socialdesk/internal/mocks/repository"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	return customerServiceFixtures{
		service:      NewCustomerService(customerRepo),
		customerRepo: customerRepo,
	}
}

func TestCustomerService_CreateCustomer_DefaultsToManual(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := fx.service.CreateCustomer(ctx, userID, usecase.CustomerInput{
		FullName: " Samir B. ",
		Phone:    "0550 00 00 00",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, customer.UserID)
	assert.Equal(t, "Samir B.", customer.FullName)
	assert.Equal(t, entity.PlatformManual, customer.Platform)
}

func TestCustomerService_CreateCustomer_Validation(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.CreateCustomer(context.Background(), uuid.New(), usecase.CustomerInput{FullName: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateCustomer(context.Background(), uuid.New(), usecase.CustomerInput{FullName: "A", Platform: "tiktok"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_UpdateCustomer_KeepsLinkedPlatform(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	userID, customerID := uuid.New(), uuid.New()
	psid := "psid-1"
	linked := &entity.Customer{
		ID:             customerID,
		UserID:         userID,
		FullName:       "Lina",
		Platform:       entity.PlatformInstagram,
		PlatformUserID: &psid,
	}

	fx.customerRepo.EXPECT().FindByID(ctx, userID, customerID).Return(linked, nil).Once()

	_, err := fx.service.UpdateCustomer(ctx, userID, customerID, usecase.CustomerInput{FullName: "Lina", Platform: entity.PlatformManual})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)

	fx.customerRepo.EXPECT().FindByID(ctx, userID, customerID).Return(linked, nil).Once()
	fx.customerRepo.EXPECT().Update(ctx, linked).Return(nil)

	updated, err := fx.service.UpdateCustomer(ctx, userID, customerID, usecase.CustomerInput{FullName: "Lina K.", Address: "Oran"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformInstagram, updated.Platform)
	assert.Equal(t, "Oran", updated.Address)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	userID, customerID := uuid.New(), uuid.New()

	fx.customerRepo.EXPECT().FindByID(ctx, userID, customerID).Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetCustomer(ctx, userID, customerID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
