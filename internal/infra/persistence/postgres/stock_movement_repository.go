package postgres

import (
	"context"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stockMovementRepository only inserts and reads; the table rejects UPDATE and DELETE.
type stockMovementRepository struct {
	db *gorm.DB
}

func NewStockMovementRepository(db *gorm.DB) repository.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (repo *stockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	// Version 7 ids are monotonic within the process, which orders movements sharing a created_at.
	if movement.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate stock movement id")
		}
		movement.ID = id
	}

	movementM := &model.StockMovementModel{
		ID:             movement.ID,
		UserID:         movement.UserID,
		ProductID:      movement.ProductID,
		ChangeQuantity: movement.ChangeQuantity,
		Reason:         movement.Reason,
		Kind:           string(movement.Kind),
		OrderID:        movement.OrderID,
		CreatedAt:      movement.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		return errors.Wrap(err, "failed to append stock movement")
	}

	movement.ID = movementM.ID
	movement.CreatedAt = movementM.CreatedAt

	return nil
}

func (repo *stockMovementRepository) Latest(ctx context.Context, productID uuid.UUID) (*entity.MovementCursor, error) {
	var movementM model.StockMovementModel
	err := repo.db.WithContext(ctx).
		Select("id", "created_at").
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Take(&movementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read latest stock movement")
	}

	return &entity.MovementCursor{CreatedAt: movementM.CreatedAt, ID: movementM.ID}, nil
}

func (repo *stockMovementRepository) ListBefore(
	ctx context.Context,
	productID uuid.UUID,
	cursor entity.MovementCursor,
	inclusive bool,
	limit int,
) ([]*entity.StockMovement, error) {
	op := "<"
	if inclusive {
		op = "<="
	}

	var movementMs []model.StockMovementModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Where("(created_at, id) "+op+" (?, ?)", cursor.CreatedAt, cursor.ID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&movementMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to page stock movements")
	}

	return toMovementsDomain(movementMs), nil
}

func (repo *stockMovementRepository) SumByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var sum int
	err := repo.db.WithContext(ctx).
		Model(&model.StockMovementModel{}).
		Select("COALESCE(SUM(change_quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum stock movements")
	}

	return sum, nil
}

func (repo *stockMovementRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.StockMovement, error) {
	var movementMs []model.StockMovementModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&movementMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order stock movements")
	}

	return toMovementsDomain(movementMs), nil
}

func toMovementsDomain(movementMs []model.StockMovementModel) []*entity.StockMovement {
	movements := make([]*entity.StockMovement, 0, len(movementMs))
	for _, m := range movementMs {
		movements = append(movements, &entity.StockMovement{
			ID:             m.ID,
			UserID:         m.UserID,
			ProductID:      m.ProductID,
			ChangeQuantity: m.ChangeQuantity,
			Reason:         m.Reason,
			Kind:           entity.MovementKind(m.Kind),
			OrderID:        m.OrderID,
			CreatedAt:      m.CreatedAt,
		})
	}

	return movements
}
