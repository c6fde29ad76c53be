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

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
	historyPageSize     = 100
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockLedgerUsecase
	Logger  *slog.Logger
}

// StockHandler exposes the stock ledger.
type StockHandler struct {
	stockUC usecase.StockLedgerUsecase
	logger  *slog.Logger
}

func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// RecordMovementRequest is a signed stock change on one product.
type RecordMovementRequest struct {
	Delta      int    `json:"delta" validate:"required"`
	Reason     string `json:"reason" validate:"required,max=500"`
	Correction bool   `json:"correction"`
}

// SetQuantityRequest sets stock to an absolute level, recording the difference.
type SetQuantityRequest struct {
	Quantity *int   `json:"quantity" validate:"required"`
	Reason   string `json:"reason" validate:"required,max=500"`
}

// ArrivalRequest is a goods arrival covering several products.
type ArrivalRequest struct {
	Items  []usecase.ArrivalItem `json:"items" validate:"required,min=1,dive"`
	Reason string                `json:"reason" validate:"required,max=500"`
}

// HistoryResponse is one page of history, newest first.
type HistoryResponse struct {
	Entries   []entity.StockHistoryEntry `json:"entries"`
	Truncated bool                       `json:"truncated"`
}

func (h *StockHandler) RecordMovement(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req RecordMovementRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.stockUC.RecordMovement(c.Request().Context(), userID, usecase.MovementInput{
		ProductID:  productID,
		Delta:      req.Delta,
		Reason:     req.Reason,
		Correction: req.Correction,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *StockHandler) SetQuantity(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req SetQuantityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.stockUC.SetAbsoluteQuantity(c.Request().Context(), userID, productID, *req.Quantity, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// BulkArrival applies every arrival line or none of them.
func (h *StockHandler) BulkArrival(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req ArrivalRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	products, err := h.stockUC.BulkArrival(c.Request().Context(), userID, req.Items, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// History returns up to limit entries with their running balance.
func (h *StockHandler) History(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	limit := queryInt(c, "limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	out := HistoryResponse{Entries: make([]entity.StockHistoryEntry, 0, min(limit, historyPageSize))}
	for entry, err := range h.stockUC.History(c.Request().Context(), userID, productID, historyPageSize) {
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if len(out.Entries) == limit {
			out.Truncated = true

			break
		}
		out.Entries = append(out.Entries, entry)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *StockHandler) VerifyBalance(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	productID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	report, err := h.stockUC.VerifyBalance(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
