package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	"geofence/internal/domain/service"
	"geofence/internal/infra/lock"
	"geofence/internal/infra/metrics"
	"geofence/internal/infra/persistence/memory"
	"geofence/internal/infra/pubsub"
	mockSvc "geofence/internal/mocks/service"
	"geofence/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	store     *memory.Store
	clock     *fakeClock
	sender    *mockSvc.MockPushSender
	regions   usecase.RegionUsecase
	locations usecase.LocationUsecase
	proximity usecase.ProximityUsecase
	history   usecase.NotificationUsecase
}

func createTestScenario(t *testing.T) *scenario {
	store := memory.NewStore()
	clock := newFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	sender := mockSvc.NewMockPushSender(t)
	cfg := createTestConfig()
	logger := createTestLogger()
	recorder := metrics.NewRecorder(prometheus.NewRegistry())

	regionRepo := memory.NewRegionRepository(store)
	experienceRepo := memory.NewExperienceRepository(store)
	ledgerRepo := memory.NewLedgerRepository(store)

	dispatcher := NewDispatchService(memory.NewPushSubscriptionRepository(store), sender, recorder, cfg, logger)
	proximity := NewProximityService(ProximityDeps{
		LocationRepo:   memory.NewLocationRepository(store),
		RegionRepo:     regionRepo,
		ExperienceRepo: experienceRepo,
		LedgerRepo:     ledgerRepo,
		Dispatcher:     dispatcher,
		Locker:         lock.NewLocalLocker(),
		Publisher:      pubsub.NewNoopPublisher(logger),
		Metrics:        recorder,
		Clock:          clock,
	}, cfg, logger)

	return &scenario{
		store:     store,
		clock:     clock,
		sender:    sender,
		regions:   NewRegionService(regionRepo, experienceRepo, memory.NewTransactionManager(store), nil, clock, cfg, logger),
		locations: NewLocationService(memory.NewLocationRepository(store), proximity, recorder, clock, cfg, logger),
		proximity: proximity,
		history:   NewNotificationService(ledgerRepo, logger),
	}
}

func (s *scenario) seedKingston(t *testing.T) *entity.GeofenceRegion {
	experience := &entity.Experience{ID: uuid.New(), Title: "Pothole on Main St", Description: "Deep pothole in the eastbound lane"}
	s.store.PutExperience(experience)
	s.store.PutSubscription(&entity.PushSubscription{
		UserID:   "u1",
		Platform: constants.PlatformWebPush,
		Endpoint: "https://push.example.com/sub/u1",
	})

	region, err := s.regions.CreateRegion(context.Background(), &usecase.CreateRegionInput{
		ExperienceID: experience.ID,
		Latitude:     18.0179,
		Longitude:    -76.8099,
		RadiusMeters: 100,
		CreatedBy:    "reporter",
	})
	require.NoError(t, err)

	return region
}

func TestScenario_KingstonPothole(t *testing.T) {
	s := createTestScenario(t)
	ctx := context.Background()
	region := s.seedKingston(t)

	var pushed atomic.Int32
	s.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, sub *entity.PushSubscription, payload *service.PushPayload) error {
			assert.Equal(t, "u1", sub.UserID)
			assert.Equal(t, "Pothole on Main St", payload.Title)
			pushed.Add(1)

			return nil
		})

	result, err := s.locations.SubmitLocation(ctx, &usecase.SubmitLocationInput{
		UserID:     "u1",
		Latitude:   18.0179,
		Longitude:  -76.8099,
		Accuracy:   5,
		ObservedAt: s.clock.Now(),
	})
	require.NoError(t, err)

	require.True(t, result.Accepted)
	require.Equal(t, 1, result.Dispatched)
	notification := result.Notifications[0]
	assert.Equal(t, region.ID, notification.RegionID)
	assert.Equal(t, 0, notification.DistanceMeters)
	assert.True(t, notification.Delivered)
	assert.Equal(t, 1, notification.DeliveredCount)
	assert.Equal(t, int32(1), pushed.Load())

	// same spot, inside the cooldown window
	again, err := s.proximity.CheckProximity(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Dispatched())

	s.clock.Advance(constants.NotificationCooldown - time.Second)
	again, err = s.proximity.CheckProximity(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Dispatched())

	s.clock.Advance(time.Second)
	again, err = s.proximity.CheckProximity(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Dispatched())
	assert.Equal(t, int32(2), pushed.Load())

	records, err := s.history.GetNotificationHistory(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	assert.True(t, records[0].Delivered)
}

func TestScenario_DeactivatedRegionNeverMatches(t *testing.T) {
	s := createTestScenario(t)
	ctx := context.Background()
	region := s.seedKingston(t)

	require.NoError(t, s.regions.DeactivateRegion(ctx, region.ID, "reporter"))

	result, err := s.locations.SubmitLocation(ctx, &usecase.SubmitLocationInput{
		UserID:     "u1",
		Latitude:   18.0179,
		Longitude:  -76.8099,
		Accuracy:   5,
		ObservedAt: s.clock.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dispatched)

	nearby, err := s.regions.ListRegionsNear(ctx, 18.0179, -76.8099, 0)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestScenario_ConcurrentChecksFireOnce(t *testing.T) {
	s := createTestScenario(t)
	ctx := context.Background()
	s.seedKingston(t)

	s.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, memory.NewLocationRepository(s.store).Upsert(ctx, &entity.UserLocation{
		UserID:     "u1",
		Latitude:   18.01795,
		Longitude:  -76.8099,
		Accuracy:   5,
		ObservedAt: s.clock.Now(),
	}))

	var wg sync.WaitGroup
	var fired atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.proximity.CheckProximity(ctx, "u1")
			if assert.NoError(t, err) {
				fired.Add(int32(result.Dispatched()))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
}

func TestScenario_UserWithoutSubscriptionsStillRecorded(t *testing.T) {
	s := createTestScenario(t)
	ctx := context.Background()
	s.seedKingston(t)

	result, err := s.locations.SubmitLocation(ctx, &usecase.SubmitLocationInput{
		UserID:     "u2",
		Latitude:   18.0179,
		Longitude:  -76.8099,
		Accuracy:   5,
		ObservedAt: s.clock.Now(),
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Dispatched)
	assert.False(t, result.Notifications[0].Delivered)
	assert.Equal(t, 0, result.Notifications[0].Attempted)
}
