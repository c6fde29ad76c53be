package handler

import (
	"log/slog"
	"net/http"
	"time"

	"socialdesk/internal/delivery/api/response"
	"socialdesk/internal/domain/entity"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultSummaryWindow = 30 * 24 * time.Hour

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler drives the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// TransitionRequest moves an order to status, optionally appending a note.
type TransitionRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
	Note   string             `json:"note" validate:"max=2000"`
}

// CancelRequest cancels an order and appends note.
type CancelRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req usecase.CreateOrderInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	limit, offset := pagination(c)
	filter := entity.OrderFilter{Limit: limit, Offset: offset}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		filter.Status = &status
	}
	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid customer_id")
		}
		filter.CustomerID = &customerID
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	orderID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrder replaces the lines; only the net stock difference is moved.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	orderID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req usecase.UpdateOrderInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), userID, orderID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) TransitionStatus(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	orderID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req TransitionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.TransitionStatus(c.Request().Context(), userID, orderID, req.Status, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder answers 207 when the cancellation committed but the note could not be stored.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	orderID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req CancelRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.CancelWithNote(c.Request().Context(), userID, orderID, req.Note)
	if order == nil {
		return response.HandleResult(c, http.StatusOK, nil, err)
	}

	return response.HandleResult(c, http.StatusOK, order, err)
}

// SalesSummary aggregates orders dated in [from, to). Both bounds are RFC 3339; the default is the last 30 days.
func (h *OrderHandler) SalesSummary(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	to := time.Now().UTC()
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "to must be an RFC 3339 timestamp")
		}
	}
	from := to.Add(-defaultSummaryWindow)
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "from must be an RFC 3339 timestamp")
		}
	}

	summary, err := h.orderUC.GetSalesSummary(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
