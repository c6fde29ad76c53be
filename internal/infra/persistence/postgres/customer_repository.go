package postgres

import (
	"context"
	"strings"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func (repo *customerRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID))
}

func (repo *customerRepository) FindByPlatformUser(
	ctx context.Context,
	userID uuid.UUID,
	platform entity.Platform,
	platformUserID string,
) (*entity.Customer, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND platform_user_id = ?", userID, string(platform), platformUserID))
}

func (repo *customerRepository) first(query *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) List(ctx context.Context, userID uuid.UUID, filter entity.CustomerFilter) ([]*entity.Customer, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("full_name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", string(filter.Platform))
	}

	var customerMs []model.CustomerModel
	if err := paginate(query, filter.Limit, filter.Offset).Order("full_name ASC, id ASC").Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for i := range customerMs {
		customers = append(customers, toCustomerDomain(&customerMs[i]))
	}

	return customers, nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND user_id = ?", customer.ID, customer.UserID).
		Updates(map[string]any{
			"full_name":        customer.FullName,
			"phone":            customer.Phone,
			"address":          customer.Address,
			"platform":         string(customer.Platform),
			"platform_user_id": customer.PlatformUserID,
			"updated_at":       gorm.Expr("now()"),
		})
	if result.Error != nil && isUniqueConstraintViolation(result.Error) {
		return repository.ErrDuplicateCustomer
	}

	return rowsAffectedOr(result, repository.ErrCustomerNotFound, "failed to update customer")
}

func (repo *customerRepository) SetArchived(ctx context.Context, userID, id uuid.UUID, archived bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_archived": archived, "updated_at": gorm.Expr("now()")})

	return rowsAffectedOr(result, repository.ErrCustomerNotFound, "failed to archive customer")
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:             m.ID,
		UserID:         m.UserID,
		FullName:       m.FullName,
		Phone:          m.Phone,
		Address:        m.Address,
		Platform:       entity.Platform(m.Platform),
		PlatformUserID: m.PlatformUserID,
		IsArchived:     m.IsArchived,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:             c.ID,
		UserID:         c.UserID,
		FullName:       c.FullName,
		Phone:          c.Phone,
		Address:        c.Address,
		Platform:       string(c.Platform),
		PlatformUserID: c.PlatformUserID,
		IsArchived:     c.IsArchived,
	}
}
