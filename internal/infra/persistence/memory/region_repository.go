package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"
	"geofence/internal/geo"

	"github.com/google/uuid"
)

type regionRepository struct {
	store *Store
}

// NewRegionRepository creates a region repository over the store
func NewRegionRepository(store *Store) repository.RegionRepository {
	return &regionRepository{store: store}
}

func (repo *regionRepository) Create(ctx context.Context, region *entity.GeofenceRegion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.regions[region.ID] = *region

	return nil
}

func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceRegion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	region, ok := repo.store.regions[id]
	if !ok {
		return nil, repository.ErrRegionNotFound
	}

	return &region, nil
}

func (repo *regionRepository) FindActiveInBox(ctx context.Context, box geo.Box) ([]*entity.GeofenceRegion, error) {
	return repo.findActive(ctx, func(region *entity.GeofenceRegion) bool {
		return box.Contains(region.Latitude, region.Longitude)
	})
}

func (repo *regionRepository) FindAllActive(ctx context.Context) ([]*entity.GeofenceRegion, error) {
	regions, err := repo.findActive(ctx, func(*entity.GeofenceRegion) bool { return true })
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(regions, func(a, b *entity.GeofenceRegion) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return regions, nil
}

func (repo *regionRepository) findActive(ctx context.Context, keep func(*entity.GeofenceRegion) bool) ([]*entity.GeofenceRegion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	regions := make([]*entity.GeofenceRegion, 0)
	for _, region := range repo.store.regions {
		if !region.IsActive || !keep(&region) {
			continue
		}
		regions = append(regions, &region)
	}

	// map order is random
	slices.SortFunc(regions, func(a, b *entity.GeofenceRegion) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return regions, nil
}

func (repo *regionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	region, ok := repo.store.regions[id]
	if !ok {
		return repository.ErrRegionNotFound
	}

	now := time.Now().UTC()
	region.IsActive = false
	region.UpdatedAt = &now
	repo.store.regions[id] = region

	return nil
}
