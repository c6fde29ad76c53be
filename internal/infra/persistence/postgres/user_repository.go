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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as an interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("lower(email) = lower(?)", email))
}

func (repo *userRepository) first(query *gorm.DB) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		Name:         userM.Name,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}
