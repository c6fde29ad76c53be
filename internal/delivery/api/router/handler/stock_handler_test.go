package handler

import (
	"encoding/json"
	"iter"
	"net/http"
	"testing"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	mockUsecase "socialdesk/internal/mocks/usecase"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStockHandler(t *testing.T) (*testServer, *mockUsecase.MockStockLedgerUsecase) {
	stockUC := mockUsecase.NewMockStockLedgerUsecase(t)
	h := NewStockHandler(StockHandlerParams{StockUC: stockUC, Logger: newDiscardLogger()})

	srv := newTestServer(t)
	srv.authenticated(http.MethodPost, "/products/:id/stock/movements", h.RecordMovement)
	srv.authenticated(http.MethodPut, "/products/:id/stock", h.SetQuantity)
	srv.authenticated(http.MethodGet, "/products/:id/stock/history", h.History)
	srv.authenticated(http.MethodPost, "/stock/arrivals", h.BulkArrival)

	return srv, stockUC
}

// historyOf yields count entries with decreasing balances, then err if set.
func historyOf(count int, err error) iter.Seq2[entity.StockHistoryEntry, error] {
	return func(yield func(entity.StockHistoryEntry, error) bool) {
		for i := range count {
			entry := entity.StockHistoryEntry{
				Movement:     entity.StockMovement{ID: uuid.New(), ChangeQuantity: 1},
				BalanceAfter: count - i,
			}
			if !yield(entry, nil) {
				return
			}
		}
		if err != nil {
			yield(entity.StockHistoryEntry{}, err)
		}
	}
}

func decodeHistory(t *testing.T, body []byte) HistoryResponse {
	t.Helper()

	var env struct {
		Data HistoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))

	return env.Data
}

func TestStockHandler_HistoryFullWalk(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	productID := uuid.New()

	stockUC.EXPECT().History(mock.Anything, srv.userID, productID, historyPageSize).Return(historyOf(3, nil))

	rec := srv.do(t, http.MethodGet, "/products/"+productID.String()+"/stock/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeHistory(t, rec.Body.Bytes())
	assert.Len(t, history.Entries, 3)
	assert.False(t, history.Truncated)
	assert.Equal(t, 3, history.Entries[0].BalanceAfter)
}

func TestStockHandler_HistoryTruncatesAtLimit(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	productID := uuid.New()

	stockUC.EXPECT().History(mock.Anything, srv.userID, productID, historyPageSize).Return(historyOf(10, nil))

	rec := srv.do(t, http.MethodGet, "/products/"+productID.String()+"/stock/history?limit=4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeHistory(t, rec.Body.Bytes())
	assert.Len(t, history.Entries, 4)
	assert.True(t, history.Truncated)
}

func TestStockHandler_HistoryErrorMidWalk(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	productID := uuid.New()

	stockUC.EXPECT().History(mock.Anything, srv.userID, productID, historyPageSize).
		Return(historyOf(2, domainerrors.ErrNotFound))

	rec := srv.do(t, http.MethodGet, "/products/"+productID.String()+"/stock/history", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockHandler_RecordMovementNegativeRejected(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	productID := uuid.New()

	stockUC.EXPECT().
		RecordMovement(mock.Anything, srv.userID, usecase.MovementInput{ProductID: productID, Delta: -9, Reason: "casse"}).
		Return(nil, domainerrors.ErrInvalidQuantity)

	rec := srv.do(t, http.MethodPost, "/products/"+productID.String()+"/stock/movements",
		map[string]any{"delta": -9, "reason": "casse"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUANTITY", decodeEnvelope(t, rec).Error.Code)
}

func TestStockHandler_SetQuantityZeroIsAllowed(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	productID := uuid.New()

	stockUC.EXPECT().SetAbsoluteQuantity(mock.Anything, srv.userID, productID, 0, "inventaire").
		Return(&entity.Product{ID: productID, StockQuantity: 0}, nil)

	rec := srv.do(t, http.MethodPut, "/products/"+productID.String()+"/stock",
		map[string]any{"quantity": 0, "reason": "inventaire"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStockHandler_BulkArrivalRollbackDetails(t *testing.T) {
	srv, stockUC := createTestStockHandler(t)
	first, second := uuid.New(), uuid.New()

	stockUC.EXPECT().BulkArrival(mock.Anything, srv.userID, mock.Anything, "arrivage mai").
		Return(nil, domainerrors.NewAtomicBatchError(1, second, errors.WithStack(domainerrors.ErrNotFound)))

	rec := srv.do(t, http.MethodPost, "/stock/arrivals", map[string]any{
		"reason": "arrivage mai",
		"items": []map[string]any{
			{"product_id": first, "quantity": 5},
			{"product_id": second, "quantity": 2},
		},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ATOMIC_BATCH_FAILURE", env.Error.Code)

	var details map[string]any
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.InDelta(t, 1, details["index"], 0)
	assert.Equal(t, "NOT_FOUND", details["cause"])
}
