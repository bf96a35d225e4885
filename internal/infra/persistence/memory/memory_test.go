package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"
	"geofence/internal/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRegion(lat, lon float64, active bool, createdAt time.Time) *entity.GeofenceRegion {
	return &entity.GeofenceRegion{
		ID:           uuid.New(),
		ExperienceID: uuid.New(),
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: 100,
		IsActive:     active,
		CreatedBy:    "owner",
		CreatedAt:    createdAt,
	}
}

func TestLocationRepository_UpsertLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(NewStore())

	_, err := repo.FindByUserID(ctx, "user-1")
	require.ErrorIs(t, err, repository.ErrLocationNotFound)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 1, Longitude: 1, ObservedAt: now}))
	// older observation still overwrites
	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 2, Longitude: 2, ObservedAt: now.Add(-time.Hour)}))

	stored, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Latitude)
}

func TestLocationRepository_UpsertIfNewer(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(NewStore())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	applied, err := repo.UpsertIfNewer(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 1, ObservedAt: now})
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.UpsertIfNewer(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 2, ObservedAt: now.Add(-time.Minute)})
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = repo.UpsertIfNewer(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 3, ObservedAt: now})
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3.0, stored.Latitude)
}

func TestRegionRepository_FindActiveInBox(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())
	now := time.Now().UTC()

	inside := createTestRegion(18.0179, -76.8099, true, now)
	inactive := createTestRegion(18.0180, -76.8100, false, now)
	far := createTestRegion(18.5, -76.8099, true, now)
	for _, region := range []*entity.GeofenceRegion{inside, inactive, far} {
		require.NoError(t, repo.Create(ctx, region))
	}

	regions, err := repo.FindActiveInBox(ctx, geo.BoundingBox(18.0179, -76.8099, 5000))
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, inside.ID, regions[0].ID)
}

func TestRegionRepository_FindActiveInBox_Antimeridian(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())
	now := time.Now().UTC()

	east := createTestRegion(-17, 179.999, true, now)
	west := createTestRegion(-17, -179.999, true, now)
	far := createTestRegion(-17, 0, true, now)
	for _, region := range []*entity.GeofenceRegion{east, west, far} {
		require.NoError(t, repo.Create(ctx, region))
	}

	regions, err := repo.FindActiveInBox(ctx, geo.BoundingBox(-17, -179.999, 500))
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(regions))
	for _, region := range regions {
		ids = append(ids, region.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{east.ID, west.ID}, ids)
}

func TestRegionRepository_FindAllActiveNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())
	now := time.Now().UTC()

	older := createTestRegion(1, 1, true, now.Add(-time.Hour))
	newer := createTestRegion(2, 2, true, now)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	regions, err := repo.FindAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, newer.ID, regions[0].ID)
	assert.Equal(t, older.ID, regions[1].ID)
}

func TestRegionRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository(NewStore())
	region := createTestRegion(1, 1, true, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, region))

	require.NoError(t, repo.Deactivate(ctx, region.ID))

	stored, err := repo.FindByID(ctx, region.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.NotNil(t, stored.UpdatedAt)

	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), repository.ErrRegionNotFound)
}

func TestLedgerRepository_RecordIfNoneSince(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(NewStore())
	regionID := uuid.New()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	first := &entity.ProximityNotification{ID: uuid.New(), UserID: "user-1", RegionID: regionID, CreatedAt: base}
	inserted, err := repo.RecordIfNoneSince(ctx, first, base.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, inserted)

	second := &entity.ProximityNotification{ID: uuid.New(), UserID: "user-1", RegionID: regionID, CreatedAt: base.Add(30 * time.Minute)}
	inserted, err = repo.RecordIfNoneSince(ctx, second, second.CreatedAt.Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted)

	// a record exactly at the boundary no longer blocks
	third := &entity.ProximityNotification{ID: uuid.New(), UserID: "user-1", RegionID: regionID, CreatedAt: base.Add(time.Hour)}
	inserted, err = repo.RecordIfNoneSince(ctx, third, third.CreatedAt.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, inserted)

	other := &entity.ProximityNotification{ID: uuid.New(), UserID: "user-2", RegionID: regionID, CreatedAt: base}
	inserted, err = repo.RecordIfNoneSince(ctx, other, base.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestLedgerRepository_RecordIfNoneSince_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(NewStore())
	regionID := uuid.New()
	now := time.Now().UTC()

	var wg sync.WaitGroup
	var inserted atomic.Int32
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.RecordIfNoneSince(ctx, &entity.ProximityNotification{
				ID: uuid.New(), UserID: "user-1", RegionID: regionID, CreatedAt: now,
			}, now.Add(-time.Hour))
			assert.NoError(t, err)
			if ok {
				inserted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inserted.Load())
}

func TestLedgerRepository_MarkDeliveredAndHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(NewStore())
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ids := make([]uuid.UUID, 0, 3)
	for i := range 3 {
		record := &entity.ProximityNotification{
			ID:        uuid.New(),
			UserID:    "user-1",
			RegionID:  uuid.New(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Record(ctx, record))
		ids = append(ids, record.ID)
	}
	require.NoError(t, repo.Record(ctx, &entity.ProximityNotification{ID: uuid.New(), UserID: "user-2", CreatedAt: base}))

	require.NoError(t, repo.MarkDelivered(ctx, ids[1], true))
	assert.ErrorIs(t, repo.MarkDelivered(ctx, uuid.New(), true), repository.ErrNotificationNotFound)

	records, err := repo.FindByUserID(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)
	assert.True(t, records[1].Delivered)

	records, err = repo.FindByUserID(ctx, "user-1", 10, 2)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ids[0], records[0].ID)

	records, err = repo.FindByUserID(ctx, "user-1", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLedgerRepository_HistoryTieBreaksOnID(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(NewStore())
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	low := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	mid := uuid.MustParse("7fffffff-0000-4000-8000-000000000000")
	high := uuid.MustParse("ffffffff-0000-4000-8000-000000000000")
	for _, id := range []uuid.UUID{mid, low, high} {
		require.NoError(t, repo.Record(ctx, &entity.ProximityNotification{
			ID:        id,
			UserID:    "user-1",
			RegionID:  uuid.New(),
			CreatedAt: createdAt,
		}))
	}

	records, err := repo.FindByUserID(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, high, records[0].ID)
	assert.Equal(t, mid, records[1].ID)
	assert.Equal(t, low, records[2].ID)
}

func TestStore_LoadSeed(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.LoadSeed("testdata/seed.yaml"))

	experience, err := NewExperienceRepository(store).FindByID(ctx, uuid.MustParse("6f1c2a4e-8d3b-4c55-9a0e-2f7b1d9c3e11"))
	require.NoError(t, err)
	assert.Equal(t, "Pothole on Main St", experience.Title)

	subscriptions, err := NewPushSubscriptionRepository(store).FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "webpush", subscriptions[0].Platform)
	assert.NotEqual(t, uuid.Nil, subscriptions[0].ID)

	assert.Error(t, store.LoadSeed("testdata/missing.yaml"))
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	region := createTestRegion(1, 1, true, time.Now().UTC())
	require.NoError(t, NewRegionRepository(store).Create(ctx, region))

	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewRegionRepository().Deactivate(ctx, region.ID)
	})
	require.NoError(t, err)

	stored, err := NewRegionRepository(store).FindByID(ctx, region.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
