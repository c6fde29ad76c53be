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

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req usecase.CustomerInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	limit, offset := pagination(c)
	customers, err := h.customerUC.ListCustomers(c.Request().Context(), userID, entity.CustomerFilter{
		Search:          c.QueryParam("search"),
		Platform:        entity.Platform(c.QueryParam("platform")),
		IncludeArchived: queryBool(c, "include_archived"),
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	customerID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), userID, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	customerID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.CustomerInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), userID, customerID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

func (h *CustomerHandler) SetArchived(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	customerID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ArchiveRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.customerUC.SetArchived(c.Request().Context(), userID, customerID, *req.Archived)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}
