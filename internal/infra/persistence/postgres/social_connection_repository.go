package postgres

import (
	"context"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type socialConnectionRepository struct {
	db *gorm.DB
}

func NewSocialConnectionRepository(db *gorm.DB) repository.SocialConnectionRepository {
	return &socialConnectionRepository{db: db}
}

func (repo *socialConnectionRepository) Upsert(ctx context.Context, connection *entity.SocialConnection) error {
	connectionM := &model.SocialConnectionModel{
		UserID:         connection.UserID,
		Platform:       string(connection.Platform),
		PlatformUserID: connection.PlatformUserID,
		PageID:         connection.PageID,
		AccessToken:    connection.AccessToken,
		TokenExpiresAt: connection.TokenExpiresAt,
	}

	err := repo.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
			DoUpdates: clause.Assignments(map[string]any{
				"platform_user_id": gorm.Expr("EXCLUDED.platform_user_id"),
				"page_id":          gorm.Expr("EXCLUDED.page_id"),
				"access_token":     gorm.Expr("EXCLUDED.access_token"),
				"token_expires_at": gorm.Expr("EXCLUDED.token_expires_at"),
				"updated_at":       gorm.Expr("now()"),
			}),
		},
		clause.Returning{},
	).Create(connectionM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert social connection")
	}

	connection.ID = connectionM.ID
	connection.CreatedAt = connectionM.CreatedAt
	connection.UpdatedAt = connectionM.UpdatedAt

	return nil
}

func (repo *socialConnectionRepository) FindByUserAndPlatform(
	ctx context.Context,
	userID uuid.UUID,
	platform entity.Platform,
) (*entity.SocialConnection, error) {
	return repo.first(repo.db.WithContext(ctx).Where("user_id = ? AND platform = ?", userID, string(platform)))
}

func (repo *socialConnectionRepository) FindByPageID(ctx context.Context, pageID string) (*entity.SocialConnection, error) {
	return repo.first(repo.db.WithContext(ctx).Where("page_id = ? OR platform_user_id = ?", pageID, pageID).Order("updated_at DESC"))
}

func (repo *socialConnectionRepository) first(query *gorm.DB) (*entity.SocialConnection, error) {
	var connectionM model.SocialConnectionModel
	if err := query.First(&connectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find social connection")
	}

	return toSocialConnectionDomain(&connectionM), nil
}

func (repo *socialConnectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error) {
	var connectionMs []model.SocialConnectionModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("platform ASC").Find(&connectionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list social connections")
	}

	connections := make([]*entity.SocialConnection, 0, len(connectionMs))
	for i := range connectionMs {
		connections = append(connections, toSocialConnectionDomain(&connectionMs[i]))
	}

	return connections, nil
}

func toSocialConnectionDomain(m *model.SocialConnectionModel) *entity.SocialConnection {
	return &entity.SocialConnection{
		ID:             m.ID,
		UserID:         m.UserID,
		Platform:       entity.Platform(m.Platform),
		PlatformUserID: m.PlatformUserID,
		PageID:         m.PageID,
		AccessToken:    m.AccessToken,
		TokenExpiresAt: m.TokenExpiresAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
