package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const cancellationNoteStep = "append_cancellation_note"

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for the order lifecycle engine, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mergeItems sums duplicate product lines, keeping first-seen order.
func mergeItems(items []usecase.OrderItemInput) ([]uuid.UUID, map[uuid.UUID]int, error) {
	if len(items) == 0 {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("an order needs at least one item")
	}

	order := make([]uuid.UUID, 0, len(items))
	quantities := make(map[uuid.UUID]int, len(items))
	for i, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("item %d: product is required", i))
		}
		if item.Quantity <= 0 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("item %d: quantity must be positive", i))
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	return order, quantities, nil
}

func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	lineOrder, quantities, err := mergeItems(input.Items)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		customer, err := repos.CustomerRepo().FindByID(ctx, userID, input.CustomerID)
		if err != nil {
			return err
		}
		if customer.IsArchived {
			return domainerrors.ErrInvalidState.WithDetails("customer is archived")
		}

		if input.ConversationID != nil {
			if _, err := repos.ConversationRepo().FindByID(ctx, userID, *input.ConversationID); err != nil {
				return err
			}
		}

		products, err := repos.ProductRepo().FindByIDsForUpdate(ctx, userID, lineOrder)
		if err != nil {
			return err
		}

		var shortfalls []domainerrors.StockShortfall
		for _, productID := range lineOrder {
			product := products[productID]
			if product.IsArchived {
				return domainerrors.ErrInvalidState.WithDetails(product.Name + " is archived")
			}
			if requested := quantities[productID]; requested > product.StockQuantity {
				shortfalls = append(shortfalls, domainerrors.StockShortfall{
					ProductID:   productID,
					ProductName: product.Name,
					Requested:   requested,
					Available:   product.StockQuantity,
				})
			}
		}
		if len(shortfalls) > 0 {
			return domainerrors.NewInsufficientStockError(shortfalls)
		}

		number, err := repos.OrderRepo().NextOrderNumber(ctx, userID)
		if err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lineOrder))
		for _, productID := range lineOrder {
			product := products[productID]
			items = append(items, entity.OrderItem{
				ProductID:     productID,
				Quantity:      quantities[productID],
				SellingPrice:  product.SellingPrice,
				PurchasePrice: product.PurchasePrice,
			})
		}

		orderDate := srv.now()
		if input.OrderDate != nil && !input.OrderDate.IsZero() {
			orderDate = *input.OrderDate
		}

		order = &entity.Order{
			UserID:          userID,
			OrderNumber:     number,
			CustomerID:      customer.ID,
			ConversationID:  input.ConversationID,
			Status:          entity.OrderStatusNew,
			TotalAmount:     entity.CalculateTotal(items),
			DeliveryService: strings.TrimSpace(input.DeliveryService),
			TrackingNumber:  strings.TrimSpace(input.TrackingNumber),
			Notes:           strings.TrimSpace(input.Notes),
			OrderDate:       orderDate,
			Items:           items,
		}
		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return err
		}

		reason := fmt.Sprintf("order #%d created", number)
		for _, productID := range sortedIDs(quantities) {
			_, err := applyStockChange(ctx, repos, products[productID], stockChange{
				delta:   -quantities[productID],
				reason:  reason,
				kind:    entity.MovementKindOrder,
				orderID: &order.ID,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation rejected", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, translateError(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Int64("orderNumber", order.OrderNumber),
		slog.Int64("total", order.TotalAmount),
	)

	return order, nil
}

func (srv *orderService) UpdateOrder(
	ctx context.Context,
	userID, orderID uuid.UUID,
	input usecase.UpdateOrderInput,
) (*entity.Order, error) {
	lineOrder, requested, err := mergeItems(input.Items)
	if err != nil {
		return nil, err
	}

	var updated *entity.Order
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := repos.OrderRepo().FindByIDForUpdate(ctx, userID, orderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return domainerrors.ErrInvalidState.WithDetails("a cancelled order cannot be edited")
		}

		reserved := order.ReservedQuantities()
		touched := make(map[uuid.UUID]int, len(reserved)+len(requested))
		for id := range reserved {
			touched[id] = 0
		}
		for id := range requested {
			touched[id] = 0
		}
		lockOrder := sortedIDs(touched)

		products, err := repos.ProductRepo().FindByIDsForUpdate(ctx, userID, lockOrder)
		if err != nil {
			return err
		}

		// The previous reservation is replaced, not stacked: availability is stock plus what this order holds.
		var shortfalls []domainerrors.StockShortfall
		for _, productID := range lockOrder {
			product := products[productID]
			if _, kept := reserved[productID]; !kept && product.IsArchived {
				return domainerrors.ErrInvalidState.WithDetails(product.Name + " is archived")
			}
			if net := requested[productID] - reserved[productID]; net > 0 && net > product.StockQuantity {
				shortfalls = append(shortfalls, domainerrors.StockShortfall{
					ProductID:   productID,
					ProductName: product.Name,
					Requested:   requested[productID],
					Available:   product.StockQuantity + reserved[productID],
				})
			}
		}
		if len(shortfalls) > 0 {
			return domainerrors.NewInsufficientStockError(shortfalls)
		}

		reason := fmt.Sprintf("order #%d updated", order.OrderNumber)
		for _, productID := range lockOrder {
			_, err := applyStockChange(ctx, repos, products[productID], stockChange{
				delta:   reserved[productID] - requested[productID],
				reason:  reason,
				kind:    entity.MovementKindOrder,
				orderID: &order.ID,
			})
			if err != nil {
				return err
			}
		}

		if !sameQuantities(reserved, requested) {
			snapshots := make(map[uuid.UUID]entity.OrderItem, len(order.Items))
			for _, item := range order.Items {
				if _, ok := snapshots[item.ProductID]; !ok {
					snapshots[item.ProductID] = item
				}
			}

			items := make([]entity.OrderItem, 0, len(lineOrder))
			for _, productID := range lineOrder {
				item := entity.OrderItem{ProductID: productID, Quantity: requested[productID]}
				if previous, ok := snapshots[productID]; ok {
					item.SellingPrice = previous.SellingPrice
					item.PurchasePrice = previous.PurchasePrice
				} else {
					item.SellingPrice = products[productID].SellingPrice
					item.PurchasePrice = products[productID].PurchasePrice
				}
				items = append(items, item)
			}

			if err := repos.OrderRepo().ReplaceItems(ctx, order.ID, items); err != nil {
				return err
			}
			order.Items = items
		}

		order.TotalAmount = entity.CalculateTotal(order.Items)
		order.Notes = strings.TrimSpace(input.Notes)
		order.DeliveryService = strings.TrimSpace(input.DeliveryService)
		order.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
		if err := repos.OrderRepo().UpdateDetails(ctx, order); err != nil {
			return err
		}

		updated, err = repos.OrderRepo().FindByID(ctx, userID, order.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Order update rejected", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, translateError(err, "failed to update order")
	}

	return updated, nil
}

func sameQuantities(a, b map[uuid.UUID]int) bool {
	if len(a) != len(b) {
		return false
	}
	for id, qty := range a {
		if b[id] != qty {
			return false
		}
	}

	return true
}

func (srv *orderService) TransitionStatus(
	ctx context.Context,
	userID, orderID uuid.UUID,
	status entity.OrderStatus,
	note string,
) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var (
		order *entity.Order
		from  entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		order, err = repos.OrderRepo().FindByIDForUpdate(ctx, userID, orderID)
		if err != nil {
			return err
		}

		from = order.Status
		if !from.CanTransitionTo(status) {
			return domainerrors.NewIllegalTransitionError(string(from), string(status))
		}

		if status == entity.OrderStatusCancelled {
			if err := srv.restock(ctx, repos, userID, order); err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().UpdateStatus(ctx, order.ID, status); err != nil {
			return err
		}
		order.Status = status

		if status == entity.OrderStatusCancelled {
			if notes := entity.AppendNote(order.Notes, note); notes != order.Notes {
				if err := repos.OrderRepo().UpdateNotes(ctx, order.ID, notes); err != nil {
					return err
				}
				order.Notes = notes
			}
		}

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to change order status")
	}

	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(status)),
	)

	return order, nil
}

// restock returns every line of order to stock. The order row lock is already held.
func (srv *orderService) restock(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, order *entity.Order) error {
	reserved := order.ReservedQuantities()
	if len(reserved) == 0 {
		return nil
	}

	lockOrder := sortedIDs(reserved)
	products, err := repos.ProductRepo().FindByIDsForUpdate(ctx, userID, lockOrder)
	if err != nil {
		return err
	}

	reason := fmt.Sprintf("order #%d cancelled", order.OrderNumber)
	for _, productID := range lockOrder {
		_, err := applyStockChange(ctx, repos, products[productID], stockChange{
			delta:   reserved[productID],
			reason:  reason,
			kind:    entity.MovementKindOrder,
			orderID: &order.ID,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (srv *orderService) CancelWithNote(ctx context.Context, userID, orderID uuid.UUID, note string) (*entity.Order, error) {
	order, err := srv.TransitionStatus(ctx, userID, orderID, entity.OrderStatusCancelled, "")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(note) == "" {
		return order, nil
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		current, err := repos.OrderRepo().FindByIDForUpdate(ctx, userID, orderID)
		if err != nil {
			return err
		}

		notes := entity.AppendNote(current.Notes, note)
		if err := repos.OrderRepo().UpdateNotes(ctx, orderID, notes); err != nil {
			return err
		}
		order.Notes = notes

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order cancelled but the note could not be saved",
			slog.Any("orderID", orderID),
			slog.Any("error", err),
		)

		return order, domainerrors.NewPartialConsistencyWarning(orderID, cancellationNoteStep, err)
	}

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		return nil, translateError(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", *filter.Status))
	}

	orders, err := srv.orderRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, translateError(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetSalesSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.SalesSummary, error) {
	if !from.Before(to) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must be before to")
	}

	orders, err := srv.orderRepo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, translateError(err, "failed to load orders for summary")
	}

	summary := &entity.SalesSummary{
		From:           from,
		To:             to,
		OrdersByStatus: make(map[entity.OrderStatus]int64, len(entity.OrderStatuses())),
	}
	for _, status := range entity.OrderStatuses() {
		summary.OrdersByStatus[status] = 0
	}

	for _, order := range orders {
		summary.OrdersByStatus[order.Status]++
		if order.Status != entity.OrderStatusDelivered {
			continue
		}
		summary.Revenue += order.TotalAmount
		for _, item := range order.Items {
			summary.GrossProfit += int64(item.Quantity) * (item.SellingPrice - item.PurchasePrice)
		}
	}

	return summary, nil
}
