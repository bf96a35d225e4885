package memory

import (
	"context"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"
)

type locationRepository struct {
	store *Store
}

// NewLocationRepository creates a location repository over the store
func NewLocationRepository(store *Store) repository.LocationRepository {
	return &locationRepository{store: store}
}

func (repo *locationRepository) Upsert(ctx context.Context, location *entity.UserLocation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.locations[location.UserID] = *location

	return nil
}

func (repo *locationRepository) UpsertIfNewer(ctx context.Context, location *entity.UserLocation) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if stored, ok := repo.store.locations[location.UserID]; ok && location.ObservedAt.Before(stored.ObservedAt) {
		return false, nil
	}
	repo.store.locations[location.UserID] = *location

	return true, nil
}

func (repo *locationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	location, ok := repo.store.locations[userID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return &location, nil
}
