package postgres

import (
	"context"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// NextOrderNumber relies on the row lock taken by the upsert, so concurrent callers
// for one user are serialized until their transactions end.
func (repo *orderRepository) NextOrderNumber(ctx context.Context, userID uuid.UUID) (int64, error) {
	var next int64
	err := repo.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (user_id, last_number) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET last_number = order_counters.last_number + 1
		RETURNING last_number`, userID).Scan(&next).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to allocate order number")
	}

	return next, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrapf(err, "order references a missing row (%s)", pgConstraintName(err))
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	order.Items = toOrderItemsDomain(orderM.Items)

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), userID, id)
}

func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	// Preload runs a separate query, so the lock applies to the order row only.
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID, id)
}

func (repo *orderRepository) find(db *gorm.DB, userID, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	var orderMs []model.OrderModel
	if err := paginate(query, filter.Limit, filter.Offset).Order("order_number DESC").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrdersDomain(orderMs), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": gorm.Expr("now()")})

	return rowsAffectedOr(result, repository.ErrOrderNotFound, "failed to update order status")
}

func (repo *orderRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"notes": notes, "updated_at": gorm.Expr("now()")})

	return rowsAffectedOr(result, repository.ErrOrderNotFound, "failed to update order notes")
}

func (repo *orderRepository) UpdateDetails(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND user_id = ?", order.ID, order.UserID).
		Updates(map[string]any{
			"delivery_service": order.DeliveryService,
			"tracking_number":  order.TrackingNumber,
			"notes":            order.Notes,
			"total_amount":     order.TotalAmount,
			"updated_at":       gorm.Expr("now()"),
		})

	return rowsAffectedOr(result, repository.ErrOrderNotFound, "failed to update order")
}

func (repo *orderRepository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}
	if len(items) == 0 {
		return nil
	}

	itemMs := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemM := fromOrderItemDomain(item)
		itemM.ID = uuid.Nil
		itemM.OrderID = orderID
		itemMs = append(itemMs, itemM)
	}
	if err := db.Create(&itemMs).Error; err != nil {
		return errors.Wrap(err, "failed to insert order items")
	}

	return nil
}

func (repo *orderRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND order_date >= ? AND order_date < ?", userID, from, to).
		Order("order_date ASC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders in period")
	}

	return toOrdersDomain(orderMs), nil
}

func toOrdersDomain(orderMs []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		OrderNumber:     m.OrderNumber,
		CustomerID:      m.CustomerID,
		ConversationID:  m.ConversationID,
		Status:          entity.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		DeliveryService: m.DeliveryService,
		TrackingNumber:  m.TrackingNumber,
		Notes:           m.Notes,
		OrderDate:       m.OrderDate,
		Items:           toOrderItemsDomain(m.Items),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderItemsDomain(itemMs []model.OrderItemModel) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(itemMs))
	for _, m := range itemMs {
		items = append(items, entity.OrderItem{
			ID:            m.ID,
			OrderID:       m.OrderID,
			ProductID:     m.ProductID,
			Quantity:      m.Quantity,
			SellingPrice:  m.SellingPrice,
			PurchasePrice: m.PurchasePrice,
		})
	}

	return items
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		ConversationID:  o.ConversationID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		DeliveryService: o.DeliveryService,
		TrackingNumber:  o.TrackingNumber,
		Notes:           o.Notes,
		OrderDate:       o.OrderDate,
		Items:           items,
	}
}

func fromOrderItemDomain(item entity.OrderItem) model.OrderItemModel {
	return model.OrderItemModel{
		ID:            item.ID,
		OrderID:       item.OrderID,
		ProductID:     item.ProductID,
		Quantity:      item.Quantity,
		SellingPrice:  item.SellingPrice,
		PurchasePrice: item.PurchasePrice,
	}
}
