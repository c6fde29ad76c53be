package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	mockUsecase "socialdesk/internal/mocks/usecase"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*testServer, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()})

	srv := newTestServer(t)
	srv.authenticated(http.MethodPost, "/products", h.CreateProduct)
	srv.authenticated(http.MethodGet, "/products", h.ListProducts)
	srv.authenticated(http.MethodGet, "/products/:id", h.GetProduct)
	srv.authenticated(http.MethodPut, "/products/:id", h.UpdateProduct)
	srv.authenticated(http.MethodPost, "/products/:id/archive", h.SetArchived)

	return srv, productUC
}

func createTestCustomerHandler(t *testing.T) (*testServer, *mockUsecase.MockCustomerUsecase) {
	customerUC := mockUsecase.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC, Logger: newDiscardLogger()})

	srv := newTestServer(t)
	srv.authenticated(http.MethodPost, "/customers", h.CreateCustomer)
	srv.authenticated(http.MethodGet, "/customers", h.ListCustomers)
	srv.authenticated(http.MethodGet, "/customers/:id", h.GetCustomer)
	srv.authenticated(http.MethodPost, "/customers/:id/archive", h.SetArchived)

	return srv, customerUC
}

func TestProductHandler_CreateProduct(t *testing.T) {
	srv, productUC := createTestProductHandler(t)
	productUC.EXPECT().
		CreateProduct(mock.Anything, srv.userID, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Name == "Caftan" && in.SellingPrice == 45000 && in.InitialStock == 4
		})).
		Return(&entity.Product{ID: uuid.New(), Name: "Caftan", StockQuantity: 4}, nil)

	rec := srv.do(t, http.MethodPost, "/products", map[string]any{
		"name":           "Caftan",
		"purchase_price": 30000,
		"selling_price":  45000,
		"initial_stock":  4,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product entity.Product
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &product))
	assert.Equal(t, 4, product.StockQuantity)
}

func TestProductHandler_CreateProductRejectsNegativePrice(t *testing.T) {
	srv, _ := createTestProductHandler(t)

	rec := srv.do(t, http.MethodPost, "/products", map[string]any{"name": "Caftan", "selling_price": -1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestProductHandler_ListProductsPassesFilter(t *testing.T) {
	srv, productUC := createTestProductHandler(t)
	productUC.EXPECT().
		ListProducts(mock.Anything, srv.userID, entity.ProductFilter{
			Search:          "robe",
			Category:        "textile",
			IncludeArchived: true,
			Limit:           defaultPageLimit,
		}).
		Return([]*entity.Product{}, nil)

	rec := srv.do(t, http.MethodGet, "/products?search=robe&category=textile&include_archived=true&limit=-3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_GetProductOfAnotherOwnerIsNotFound(t *testing.T) {
	srv, productUC := createTestProductHandler(t)
	productID := uuid.New()
	productUC.EXPECT().GetProduct(mock.Anything, srv.userID, productID).Return(nil, domainerrors.ErrNotFound)

	rec := srv.do(t, http.MethodGet, "/products/"+productID.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_UpdateProductIgnoresStock(t *testing.T) {
	srv, productUC := createTestProductHandler(t)
	productID := uuid.New()
	productUC.EXPECT().
		UpdateProduct(mock.Anything, srv.userID, productID, mock.MatchedBy(func(in usecase.UpdateProductInput) bool {
			return in.Name == "Caftan brodé"
		})).
		Return(&entity.Product{ID: productID, Name: "Caftan brodé", StockQuantity: 2}, nil)

	rec := srv.do(t, http.MethodPut, "/products/"+productID.String(), map[string]any{
		"name":           "Caftan brodé",
		"stock_quantity": 999,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var product entity.Product
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &product))
	assert.Equal(t, 2, product.StockQuantity)
}

func TestProductHandler_SetArchived(t *testing.T) {
	srv, productUC := createTestProductHandler(t)
	productID := uuid.New()
	productUC.EXPECT().SetArchived(mock.Anything, srv.userID, productID, false).
		Return(&entity.Product{ID: productID}, nil)

	rec := srv.do(t, http.MethodPost, "/products/"+productID.String()+"/archive", map[string]any{"archived": false})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/products/"+productID.String()+"/archive", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	srv, customerUC := createTestCustomerHandler(t)
	customerUC.EXPECT().
		CreateCustomer(mock.Anything, srv.userID, usecase.CustomerInput{
			FullName: "Amina B.",
			Phone:    "0555 12 34 56",
			Platform: entity.PlatformManual,
		}).
		Return(&entity.Customer{ID: uuid.New(), FullName: "Amina B."}, nil)

	rec := srv.do(t, http.MethodPost, "/customers", map[string]any{
		"full_name": "Amina B.",
		"phone":     "0555 12 34 56",
		"platform":  "manual",
	})

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCustomerHandler_CreateCustomerUnknownPlatform(t *testing.T) {
	srv, _ := createTestCustomerHandler(t)

	rec := srv.do(t, http.MethodPost, "/customers", map[string]any{"full_name": "Amina B.", "platform": "tiktok"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	srv, customerUC := createTestCustomerHandler(t)
	customerUC.EXPECT().
		ListCustomers(mock.Anything, srv.userID, entity.CustomerFilter{
			Platform: entity.PlatformInstagram,
			Limit:    20,
			Offset:   40,
		}).
		Return([]*entity.Customer{{FullName: "Amina B."}}, nil)

	rec := srv.do(t, http.MethodGet, "/customers?platform=instagram&limit=20&offset=40", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Customer
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Len(t, got, 1)
}

func TestCustomerHandler_GetCustomerInvalidID(t *testing.T) {
	srv, _ := createTestCustomerHandler(t)

	rec := srv.do(t, http.MethodGet, "/customers/42", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestCustomerHandler_SetArchived(t *testing.T) {
	srv, customerUC := createTestCustomerHandler(t)
	customerID := uuid.New()
	customerUC.EXPECT().SetArchived(mock.Anything, srv.userID, customerID, true).
		Return(&entity.Customer{ID: customerID, IsArchived: true}, nil)

	rec := srv.do(t, http.MethodPost, "/customers/"+customerID.String()+"/archive", map[string]any{"archived": true})

	assert.Equal(t, http.StatusOK, rec.Code)
}
