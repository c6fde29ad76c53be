package handler

import (
	"log/slog"
	"net/http"

	"socialdesk/internal/delivery/api/response"
	"socialdesk/internal/domain/entity"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req usecase.CreateProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	limit, offset := pagination(c)
	products, err := h.productUC.ListProducts(c.Request().Context(), userID, entity.ProductFilter{
		Search:          c.QueryParam("search"),
		Category:        c.QueryParam("category"),
		IncludeArchived: queryBool(c, "include_archived"),
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct edits name, category and prices. Stock is changed through the stock routes.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.UpdateProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, productID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) SetArchived(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ArchiveRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.SetArchived(c.Request().Context(), userID, productID, *req.Archived)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
