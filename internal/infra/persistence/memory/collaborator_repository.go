package memory

import (
	"context"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"

	"github.com/google/uuid"
)

type experienceRepository struct {
	store *Store
}

// NewExperienceRepository creates a read-only experience repository over the store
func NewExperienceRepository(store *Store) repository.ExperienceRepository {
	return &experienceRepository{store: store}
}

func (repo *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	experience, ok := repo.store.experiences[id]
	if !ok {
		return nil, repository.ErrExperienceNotFound
	}

	return &experience, nil
}

func (repo *experienceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	experiences := make(map[uuid.UUID]*entity.Experience, len(ids))
	for _, id := range ids {
		if experience, ok := repo.store.experiences[id]; ok {
			experiences[id] = &experience
		}
	}

	return experiences, nil
}

type pushSubscriptionRepository struct {
	store *Store
}

// NewPushSubscriptionRepository creates a read-only subscription repository over the store
func NewPushSubscriptionRepository(store *Store) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{store: store}
}

func (repo *pushSubscriptionRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.PushSubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	stored := repo.store.subscriptions[userID]
	subscriptions := make([]*entity.PushSubscription, 0, len(stored))
	for _, subscription := range stored {
		subscriptions = append(subscriptions, &subscription)
	}

	return subscriptions, nil
}
