package postgres

import (
	"context"
	"slices"
	"strings"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultListLimit = 50

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a ProductRepository over db, which may be a transaction.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "invalid product")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx), userID, id)
}

func (repo *productRepository) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), userID, id)
}

func (repo *productRepository) find(db *gorm.DB, userID, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Product{}, nil
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	sorted = slices.Compact(sorted)

	// ORDER BY id makes every transaction acquire the row locks in the same order.
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ? AND id IN ?", userID, sorted).
		Order("id ASC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}
	if len(productMs) != len(sorted) {
		return nil, repository.ErrProductNotFound
	}

	products := make(map[uuid.UUID]*entity.Product, len(productMs))
	for i := range productMs {
		products[productMs[i].ID] = toProductDomain(&productMs[i])
	}

	return products, nil
}

func (repo *productRepository) List(ctx context.Context, userID uuid.UUID, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var productMs []model.ProductModel
	if err := paginate(query, filter.Limit, filter.Offset).Order("name ASC, id ASC").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

func (repo *productRepository) UpdateDetails(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Updates(map[string]any{
			"name":           product.Name,
			"category":       product.Category,
			"purchase_price": product.PurchasePrice,
			"selling_price":  product.SellingPrice,
			"updated_at":     gorm.Expr("now()"),
		})

	return rowsAffectedOr(result, repository.ErrProductNotFound, "failed to update product")
}

func (repo *productRepository) SetArchived(ctx context.Context, userID, id uuid.UUID, archived bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_archived": archived, "updated_at": gorm.Expr("now()")})

	return rowsAffectedOr(result, repository.ErrProductNotFound, "failed to archive product")
}

func (repo *productRepository) UpdateStockQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"stock_quantity": quantity, "updated_at": gorm.Expr("now()")})

	return rowsAffectedOr(result, repository.ErrProductNotFound, "failed to update stock quantity")
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Category:      m.Category,
		PurchasePrice: m.PurchasePrice,
		SellingPrice:  m.SellingPrice,
		StockQuantity: m.StockQuantity,
		IsArchived:    m.IsArchived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            p.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		IsArchived:    p.IsArchived,
	}
}
