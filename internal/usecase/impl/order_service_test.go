package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order lifecycle tests.
type orderServiceFixtures struct {
	service  usecase.OrderUsecase
	store    *memoryStore
	userID   uuid.UUID
	customer entity.Customer
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	store := newMemoryStore()
	userID := uuid.New()
	service := NewOrderService(OrderServiceParams{
		TxManager: store,
		OrderRepo: store.orders(),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:  service,
		store:    store,
		userID:   userID,
		customer: store.seedCustomer(userID, "Amina"),
	}
}

func (f orderServiceFixtures) create(t *testing.T, items ...usecase.OrderItemInput) *entity.Order {
	t.Helper()

	order, err := f.service.CreateOrder(context.Background(), f.userID, usecase.CreateOrderInput{
		CustomerID: f.customer.ID,
		Items:      items,
	})
	require.NoError(t, err)

	return order
}

func (f orderServiceFixtures) setStatus(orderID uuid.UUID, status entity.OrderStatus) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	order := f.store.state.orders[orderID]
	order.Status = status
	f.store.state.orders[orderID] = order
}

func item(productID uuid.UUID, quantity int) usecase.OrderItemInput {
	return usecase.OrderItemInput{ProductID: productID, Quantity: quantity}
}

func assertBalanced(t *testing.T, store *memoryStore, productID uuid.UUID) {
	t.Helper()
	assert.Equal(t, store.product(productID).StockQuantity, store.ledgerSum(productID), "stock must equal ledger sum")
}

func TestOrderService_ReserveCancelAndReorder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Robe", 10, 1500, 3000)

	order := fx.create(t, item(product.ID, 7))
	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Equal(t, int64(1), order.OrderNumber)
	assert.Equal(t, int64(21000), order.TotalAmount)
	assert.Equal(t, 3, fx.store.product(product.ID).StockQuantity)

	cancelled, err := fx.service.TransitionStatus(ctx, fx.userID, order.ID, entity.OrderStatusCancelled, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 10, fx.store.product(product.ID).StockQuantity)

	_, err = fx.service.CreateOrder(ctx, fx.userID, usecase.CreateOrderInput{
		CustomerID: fx.customer.ID,
		Items:      []usecase.OrderItemInput{item(product.ID, 11)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	insufficient, ok := errors.AsType[*domainerrors.InsufficientStockError](err)
	require.True(t, ok)
	require.Len(t, insufficient.Shortfalls, 1)
	assert.Equal(t, 11, insufficient.Shortfalls[0].Requested)
	assert.Equal(t, 10, insufficient.Shortfalls[0].Available)
	assert.Equal(t, "Robe", insufficient.Shortfalls[0].ProductName)

	assert.Equal(t, 10, fx.store.product(product.ID).StockQuantity)
	assertBalanced(t, fx.store, product.ID)

	movements := fx.store.movementsOf(product.ID)
	require.Len(t, movements, 3)
	assert.Equal(t, -7, movements[1].ChangeQuantity)
	assert.Equal(t, "order #1 created", movements[1].Reason)
	assert.Equal(t, 7, movements[2].ChangeQuantity)
	assert.Equal(t, "order #1 cancelled", movements[2].Reason)
	require.NotNil(t, movements[2].OrderID)
	assert.Equal(t, order.ID, *movements[2].OrderID)
}

func TestOrderService_CreateOrder_ConcurrentReservationsNeverOversell(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Sac", 10, 800, 2000)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.CreateOrder(context.Background(), fx.userID, usecase.CreateOrderInput{
				CustomerID: fx.customer.ID,
				Items:      []usecase.OrderItemInput{item(product.ID, 6)},
			})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++

				return
			}
			if errors.Is(err, domainerrors.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 4, fx.store.product(product.ID).StockQuantity)
	assertBalanced(t, fx.store, product.ID)
}

func TestOrderService_CreateOrder_ItemizesEveryShortfallAndWritesNothing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	a := fx.store.seedProduct(fx.userID, "A", 2, 100, 200)
	b := fx.store.seedProduct(fx.userID, "B", 1, 100, 200)
	c := fx.store.seedProduct(fx.userID, "C", 9, 100, 200)

	_, err := fx.service.CreateOrder(ctx, fx.userID, usecase.CreateOrderInput{
		CustomerID: fx.customer.ID,
		Items:      []usecase.OrderItemInput{item(a.ID, 3), item(c.ID, 1), item(b.ID, 2)},
	})
	insufficient, ok := errors.AsType[*domainerrors.InsufficientStockError](err)
	require.True(t, ok)
	require.Len(t, insufficient.Shortfalls, 2)
	assert.Equal(t, a.ID, insufficient.Shortfalls[0].ProductID)
	assert.Equal(t, b.ID, insufficient.Shortfalls[1].ProductID)

	for _, p := range []entity.Product{a, b, c} {
		assert.Equal(t, p.StockQuantity, fx.store.product(p.ID).StockQuantity)
		assert.Len(t, fx.store.movementsOf(p.ID), 1)
	}

	// The counter was rolled back with the failed order.
	order := fx.create(t, item(c.ID, 1))
	assert.Equal(t, int64(1), order.OrderNumber)
}

func TestOrderService_CreateOrder_MergesDuplicateLines(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Foulard", 5, 100, 250)

	order := fx.create(t, item(product.ID, 2), item(product.ID, 1))

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, int64(750), order.TotalAmount)
	assert.Equal(t, 2, fx.store.product(product.ID).StockQuantity)
	assert.Len(t, fx.store.movementsOf(product.ID), 2)
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(fx orderServiceFixtures, productID uuid.UUID) usecase.CreateOrderInput
		want    error
	}{
		{
			name: "no items",
			prepare: func(fx orderServiceFixtures, _ uuid.UUID) usecase.CreateOrderInput {
				return usecase.CreateOrderInput{CustomerID: fx.customer.ID}
			},
			want: domainerrors.ErrValidationFailed,
		},
		{
			name: "zero quantity",
			prepare: func(fx orderServiceFixtures, productID uuid.UUID) usecase.CreateOrderInput {
				return usecase.CreateOrderInput{CustomerID: fx.customer.ID, Items: []usecase.OrderItemInput{item(productID, 0)}}
			},
			want: domainerrors.ErrValidationFailed,
		},
		{
			name: "unknown customer",
			prepare: func(_ orderServiceFixtures, productID uuid.UUID) usecase.CreateOrderInput {
				return usecase.CreateOrderInput{CustomerID: uuid.New(), Items: []usecase.OrderItemInput{item(productID, 1)}}
			},
			want: domainerrors.ErrNotFound,
		},
		{
			name: "unknown product",
			prepare: func(fx orderServiceFixtures, _ uuid.UUID) usecase.CreateOrderInput {
				return usecase.CreateOrderInput{CustomerID: fx.customer.ID, Items: []usecase.OrderItemInput{item(uuid.New(), 1)}}
			},
			want: domainerrors.ErrNotFound,
		},
		{
			name: "archived customer",
			prepare: func(fx orderServiceFixtures, productID uuid.UUID) usecase.CreateOrderInput {
				fx.store.mu.Lock()
				customer := fx.store.state.customers[fx.customer.ID]
				customer.IsArchived = true
				fx.store.state.customers[fx.customer.ID] = customer
				fx.store.mu.Unlock()

				return usecase.CreateOrderInput{CustomerID: fx.customer.ID, Items: []usecase.OrderItemInput{item(productID, 1)}}
			},
			want: domainerrors.ErrInvalidState,
		},
		{
			name: "archived product",
			prepare: func(fx orderServiceFixtures, productID uuid.UUID) usecase.CreateOrderInput {
				fx.store.mu.Lock()
				product := fx.store.state.products[productID]
				product.IsArchived = true
				fx.store.state.products[productID] = product
				fx.store.mu.Unlock()

				return usecase.CreateOrderInput{CustomerID: fx.customer.ID, Items: []usecase.OrderItemInput{item(productID, 1)}}
			},
			want: domainerrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			product := fx.store.seedProduct(fx.userID, "Chemise", 4, 100, 200)

			_, err := fx.service.CreateOrder(context.Background(), fx.userID, tt.prepare(fx, product.ID))

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 4, fx.store.product(product.ID).StockQuantity)
		})
	}
}

func TestOrderService_CreateOrder_NumbersArePerUserAndSequential(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Bague", 10, 100, 200)

	first := fx.create(t, item(product.ID, 1))
	second := fx.create(t, item(product.ID, 1))

	assert.Equal(t, int64(1), first.OrderNumber)
	assert.Equal(t, int64(2), second.OrderNumber)

	otherUser := uuid.New()
	otherCustomer := fx.store.seedCustomer(otherUser, "Karim")
	otherProduct := fx.store.seedProduct(otherUser, "Bague", 1, 100, 200)
	other, err := fx.service.CreateOrder(context.Background(), otherUser, usecase.CreateOrderInput{
		CustomerID: otherCustomer.ID,
		Items:      []usecase.OrderItemInput{item(otherProduct.ID, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.OrderNumber)
}

func TestOrderService_UpdateOrder_IdenticalItemsWriteNoMovement(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Jupe", 10, 100, 200)
	order := fx.create(t, item(product.ID, 4))
	before := len(fx.store.movementsOf(product.ID))

	updated, err := fx.service.UpdateOrder(context.Background(), fx.userID, order.ID, usecase.UpdateOrderInput{
		Items:           []usecase.OrderItemInput{item(product.ID, 4)},
		DeliveryService: "Yalidine",
	})
	require.NoError(t, err)

	assert.Equal(t, "Yalidine", updated.DeliveryService)
	assert.Len(t, fx.store.movementsOf(product.ID), before)
	assert.Equal(t, 6, fx.store.product(product.ID).StockQuantity)
}

func TestOrderService_UpdateOrder_MovesOnlyNetDifference(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	a := fx.store.seedProduct(fx.userID, "A", 10, 100, 300)
	b := fx.store.seedProduct(fx.userID, "B", 5, 50, 100)
	order := fx.create(t, item(a.ID, 3))

	// A price change after the order must not reprice the existing line.
	fx.store.mu.Lock()
	repriced := fx.store.state.products[a.ID]
	repriced.SellingPrice = 999
	fx.store.state.products[a.ID] = repriced
	fx.store.mu.Unlock()

	updated, err := fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(a.ID, 5), item(b.ID, 2)},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, fx.store.product(a.ID).StockQuantity)
	assert.Equal(t, 3, fx.store.product(b.ID).StockQuantity)

	aMovements := fx.store.movementsOf(a.ID)
	require.Len(t, aMovements, 3)
	assert.Equal(t, -2, aMovements[2].ChangeQuantity)
	assert.Equal(t, "order #1 updated", aMovements[2].Reason)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, int64(300), updated.Items[0].SellingPrice)
	assert.Equal(t, int64(100), updated.Items[1].SellingPrice)
	assert.Equal(t, int64(5*300+2*100), updated.TotalAmount)

	// Dropping a line returns its whole quantity.
	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(a.ID, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, fx.store.product(b.ID).StockQuantity)
	assertBalanced(t, fx.store, a.ID)
	assertBalanced(t, fx.store, b.ID)
}

func TestOrderService_UpdateOrder_CountsOwnReservationAsAvailable(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Montre", 5, 100, 200)
	order := fx.create(t, item(product.ID, 5))

	_, err := fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 5)},
	})
	require.NoError(t, err)

	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 6)},
	})
	insufficient, ok := errors.AsType[*domainerrors.InsufficientStockError](err)
	require.True(t, ok)
	assert.Equal(t, 5, insufficient.Shortfalls[0].Available)
	assert.Equal(t, 0, fx.store.product(product.ID).StockQuantity)
	assert.Len(t, fx.store.order(order.ID).Items, 1)
}

func TestOrderService_RestocksApplyAfterNegativeCorrection(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	ledger := NewStockLedgerService(StockLedgerServiceParams{
		TxManager: fx.store,
		Logger:    newDiscardLogger(),
	})
	product := fx.store.seedProduct(fx.userID, "Parfum", 5, 100, 200)
	order := fx.create(t, item(product.ID, 3))

	_, err := ledger.RecordMovement(ctx, fx.userID, usecase.MovementInput{
		ProductID:  product.ID,
		Delta:      -6,
		Reason:     "inventaire",
		Correction: true,
	})
	require.NoError(t, err)
	require.Equal(t, -4, fx.store.product(product.ID).StockQuantity)

	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 3)},
	})
	require.NoError(t, err, "identical items")
	assert.Equal(t, -4, fx.store.product(product.ID).StockQuantity)

	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 1)},
	})
	require.NoError(t, err, "reduced quantity")
	assert.Equal(t, -2, fx.store.product(product.ID).StockQuantity)

	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 2)},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock), "raising the quantity still needs stock")

	cancelled, err := fx.service.TransitionStatus(ctx, fx.userID, order.ID, entity.OrderStatusCancelled, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, -1, fx.store.product(product.ID).StockQuantity)
	assertBalanced(t, fx.store, product.ID)
}

func TestOrderService_UpdateOrder_RejectsCancelledOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Gilet", 5, 100, 200)
	order := fx.create(t, item(product.ID, 1))

	_, err := fx.service.TransitionStatus(ctx, fx.userID, order.ID, entity.OrderStatusCancelled, "")
	require.NoError(t, err)

	_, err = fx.service.UpdateOrder(ctx, fx.userID, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{item(product.ID, 2)},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
	assert.Equal(t, 5, fx.store.product(product.ID).StockQuantity)
}

func TestOrderService_TransitionStatus_FollowsLifecycleTable(t *testing.T) {
	allowed := map[entity.OrderStatus][]entity.OrderStatus{
		entity.OrderStatusNew:       {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
		entity.OrderStatusConfirmed: {entity.OrderStatusShipping, entity.OrderStatusCancelled},
		entity.OrderStatusShipping:  {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
		entity.OrderStatusDelivered: {entity.OrderStatusCancelled},
		entity.OrderStatusCancelled: {},
	}

	for _, from := range entity.OrderStatuses() {
		for _, to := range entity.OrderStatuses() {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				fx := createTestOrderService(t)
				product := fx.store.seedProduct(fx.userID, "Pull", 10, 100, 200)
				order := fx.create(t, item(product.ID, 2))
				fx.setStatus(order.ID, from)
				stockBefore := fx.store.product(product.ID).StockQuantity

				got, err := fx.service.TransitionStatus(context.Background(), fx.userID, order.ID, to, "")

				want := false
				for _, s := range allowed[from] {
					want = want || s == to
				}
				if !want {
					require.Error(t, err)
					assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
					assert.Equal(t, from, fx.store.order(order.ID).Status)
					assert.Equal(t, stockBefore, fx.store.product(product.ID).StockQuantity)

					return
				}

				require.NoError(t, err)
				assert.Equal(t, to, got.Status)
				assert.Equal(t, to, fx.store.order(order.ID).Status)
				if to == entity.OrderStatusCancelled {
					assert.Equal(t, stockBefore+2, fx.store.product(product.ID).StockQuantity)
				} else {
					assert.Equal(t, stockBefore, fx.store.product(product.ID).StockQuantity)
				}
			})
		}
	}
}

func TestOrderService_TransitionStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Pull", 10, 100, 200)
	order := fx.create(t, item(product.ID, 1))

	_, err := fx.service.TransitionStatus(context.Background(), fx.userID, order.ID, entity.OrderStatus("shipped"), "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CancelTwiceRestocksOnce(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Veste", 8, 100, 200)
	order := fx.create(t, item(product.ID, 3))

	_, err := fx.service.CancelWithNote(ctx, fx.userID, order.ID, "client injoignable")
	require.NoError(t, err)
	_, err = fx.service.CancelWithNote(ctx, fx.userID, order.ID, "again")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
	assert.Equal(t, 8, fx.store.product(product.ID).StockQuantity)
	assert.Len(t, fx.store.movementsOf(product.ID), 3)
	assert.Equal(t, "client injoignable", fx.store.order(order.ID).Notes)
}

func TestOrderService_CancelWithNote_AppendsAfterExistingNotes(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Veste", 8, 100, 200)
	order, err := fx.service.CreateOrder(ctx, fx.userID, usecase.CreateOrderInput{
		CustomerID: fx.customer.ID,
		Items:      []usecase.OrderItemInput{item(product.ID, 1)},
		Notes:      "livrer le soir",
	})
	require.NoError(t, err)

	cancelled, err := fx.service.CancelWithNote(ctx, fx.userID, order.ID, "  adresse fausse ")
	require.NoError(t, err)

	want := "livrer le soir" + entity.NoteSeparator + "adresse fausse"
	assert.Equal(t, want, cancelled.Notes)
	assert.Equal(t, want, fx.store.order(order.ID).Notes)
}

func TestOrderService_CancelWithNote_ReportsPartialConsistency(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(fx.userID, "Veste", 8, 100, 200)
	order := fx.create(t, item(product.ID, 3))
	fx.store.failOn("OrderRepo.UpdateNotes", errors.New("connection reset"))

	cancelled, err := fx.service.CancelWithNote(ctx, fx.userID, order.ID, "rupture")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPartialConsistency))
	warning, ok := errors.AsType[*domainerrors.PartialConsistencyWarning](err)
	require.True(t, ok)
	assert.Equal(t, order.ID, warning.EntityID)
	assert.Equal(t, "append_cancellation_note", warning.Step)

	require.NotNil(t, cancelled)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.OrderStatusCancelled, fx.store.order(order.ID).Status)
	assert.Empty(t, fx.store.order(order.ID).Notes)
	assert.Equal(t, 8, fx.store.product(product.ID).StockQuantity)
}

func TestOrderService_TransitionStatus_RollsBackRestockWhenStatusWriteFails(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "Veste", 8, 100, 200)
	order := fx.create(t, item(product.ID, 3))
	fx.store.failOn("OrderRepo.UpdateStatus", errors.New("deadlock detected"))

	_, err := fx.service.TransitionStatus(context.Background(), fx.userID, order.ID, entity.OrderStatusCancelled, "")

	require.Error(t, err)
	assert.Equal(t, entity.OrderStatusNew, fx.store.order(order.ID).Status)
	assert.Equal(t, 5, fx.store.product(product.ID).StockQuantity)
	assertBalanced(t, fx.store, product.ID)
}

func TestOrderService_GetSalesSummary(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	a := fx.store.seedProduct(fx.userID, "A", 20, 100, 250)
	b := fx.store.seedProduct(fx.userID, "B", 20, 40, 90)

	delivered := fx.create(t, item(a.ID, 2), item(b.ID, 1))
	fx.setStatus(delivered.ID, entity.OrderStatusDelivered)
	cancelled := fx.create(t, item(a.ID, 5))
	_, err := fx.service.TransitionStatus(ctx, fx.userID, cancelled.ID, entity.OrderStatusCancelled, "")
	require.NoError(t, err)
	fx.create(t, item(b.ID, 1))

	from := time.Now().Add(-time.Hour)
	summary, err := fx.service.GetSalesSummary(ctx, fx.userID, from, from.Add(48*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.OrdersByStatus[entity.OrderStatusDelivered])
	assert.Equal(t, int64(1), summary.OrdersByStatus[entity.OrderStatusCancelled])
	assert.Equal(t, int64(1), summary.OrdersByStatus[entity.OrderStatusNew])
	assert.Equal(t, int64(0), summary.OrdersByStatus[entity.OrderStatusShipping])
	assert.Equal(t, int64(2*250+90), summary.Revenue)
	assert.Equal(t, int64(2*150+50), summary.GrossProfit)

	_, err = fx.service.GetSalesSummary(ctx, fx.userID, from, from)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_GetOrder_ScopedToOwner(t *testing.T) {
	fx := createTestOrderService(t)
	product := fx.store.seedProduct(fx.userID, "A", 2, 100, 200)
	order := fx.create(t, item(product.ID, 1))

	_, err := fx.service.GetOrder(context.Background(), uuid.New(), order.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
