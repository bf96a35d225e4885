package postgres

import (
	"context"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"
	"geofence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// experienceRepository reads the experience collaborator's table.
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository is the constructor for experienceRepository.
func NewExperienceRepository(db *gorm.DB) repository.ExperienceRepository {
	return &experienceRepository{db: db}
}

func (repo *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	var experienceM model.ExperienceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&experienceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExperienceNotFound
		}

		return nil, errors.Wrap(err, "failed to find experience by ID")
	}

	return toExperienceDomain(&experienceM), nil
}

func (repo *experienceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Experience, error) {
	experiences := make(map[uuid.UUID]*entity.Experience, len(ids))
	if len(ids) == 0 {
		return experiences, nil
	}

	var experienceModels []*model.ExperienceModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&experienceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find experiences by IDs")
	}

	for _, experienceM := range experienceModels {
		experiences[experienceM.ID] = toExperienceDomain(experienceM)
	}

	return experiences, nil
}

// pushSubscriptionRepository reads the subscription collaborator's table.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db}
}

func (repo *pushSubscriptionRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions by user")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, &entity.PushSubscription{
			ID:        subscriptionM.ID,
			UserID:    subscriptionM.UserID,
			Platform:  subscriptionM.Platform,
			Endpoint:  subscriptionM.Endpoint,
			P256dh:    subscriptionM.P256dh,
			Auth:      subscriptionM.Auth,
			CreatedAt: subscriptionM.CreatedAt,
		})
	}

	return subscriptions, nil
}

func toExperienceDomain(data *model.ExperienceModel) *entity.Experience {
	return &entity.Experience{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
	}
}
