package impl

import (
	"context"
	"testing"
	"time"

	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	mockRepo "geofence/internal/mocks/repository"
	mockSvc "geofence/internal/mocks/service"
	mockUsecase "geofence/internal/mocks/usecase"
	"geofence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type proximityServiceMocks struct {
	locationRepo   *mockRepo.MockLocationRepository
	regionRepo     *mockRepo.MockRegionRepository
	experienceRepo *mockRepo.MockExperienceRepository
	ledgerRepo     *mockRepo.MockLedgerRepository
	dispatcher     *mockUsecase.MockDispatchUsecase
	locker         *mockSvc.MockUserLocker
	publisher      *mockSvc.MockEventPublisher
	metrics        *mockSvc.MockMetricsRecorder
	clock          *mockSvc.MockClock
}

var proximityTestNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func createTestProximityService(t *testing.T) (usecase.ProximityUsecase, *proximityServiceMocks) {
	mocks := &proximityServiceMocks{
		locationRepo:   mockRepo.NewMockLocationRepository(t),
		regionRepo:     mockRepo.NewMockRegionRepository(t),
		experienceRepo: mockRepo.NewMockExperienceRepository(t),
		ledgerRepo:     mockRepo.NewMockLedgerRepository(t),
		dispatcher:     mockUsecase.NewMockDispatchUsecase(t),
		locker:         mockSvc.NewMockUserLocker(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		metrics:        mockSvc.NewMockMetricsRecorder(t),
		clock:          mockSvc.NewMockClock(t),
	}

	mocks.clock.EXPECT().Now().Return(proximityTestNow).Maybe()

	svc := NewProximityService(ProximityDeps{
		LocationRepo:   mocks.locationRepo,
		RegionRepo:     mocks.regionRepo,
		ExperienceRepo: mocks.experienceRepo,
		LedgerRepo:     mocks.ledgerRepo,
		Dispatcher:     mocks.dispatcher,
		Locker:         mocks.locker,
		Publisher:      mocks.publisher,
		Metrics:        mocks.metrics,
		Clock:          mocks.clock,
	}, createTestConfig(), createTestLogger())

	return svc, mocks
}

// expectMatched covers the calls every check with matches makes before the per-region loop
func (m *proximityServiceMocks) expectMatched(userID string, regions []*entity.GeofenceRegion, matched int, experiences map[uuid.UUID]*entity.Experience) {
	m.regionRepo.EXPECT().FindActiveInBox(mock.Anything, mock.Anything).Return(regions, nil)
	m.metrics.EXPECT().RegionsMatched(matched).Return()
	m.locker.EXPECT().Lock(mock.Anything, userID).Return(func() {}, nil)
	m.experienceRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(experiences, nil)
}

func createTestLocation(userID string, lat, lon float64) *entity.UserLocation {
	return &entity.UserLocation{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		Accuracy:   5,
		ObservedAt: proximityTestNow,
		RecordedAt: proximityTestNow,
	}
}

func TestProximityService_CheckProximity_EmptyUser(t *testing.T) {
	svc, _ := createTestProximityService(t)

	_, err := svc.CheckProximity(context.Background(), "")
	assert.True(t, domainerrors.IsValidation(err))
}

func TestProximityService_CheckProximity_NoLocation(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	mocks.locationRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrLocationNotFound)

	result, err := svc.CheckProximity(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Dispatched())
}

func TestProximityService_CheckProximity_LocationError(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	mocks.locationRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, dbErr)

	_, err := svc.CheckProximity(ctx, "user-1")
	assert.ErrorIs(t, err, dbErr)
}

func TestProximityService_Evaluate_NoMatches(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	// candidate in the box but outside its own radius
	region := &entity.GeofenceRegion{ID: uuid.New(), Latitude: 10.01, Longitude: 10, RadiusMeters: 100, IsActive: true}
	mocks.regionRepo.EXPECT().FindActiveInBox(ctx, mock.Anything).Return([]*entity.GeofenceRegion{region}, nil)

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 10, 10))
	require.NoError(t, err)
	assert.Empty(t, result.Notifications)
}

func TestProximityService_Evaluate_DispatchesNearestFirst(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	far := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 18.0189, Longitude: -76.8099, RadiusMeters: 500, IsActive: true}
	near := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 18.0179, Longitude: -76.8099, RadiusMeters: 50, IsActive: true}
	experiences := map[uuid.UUID]*entity.Experience{
		near.ExperienceID: {ID: near.ExperienceID, Title: "Pothole on Main St"},
	}

	mocks.expectMatched("user-1", []*entity.GeofenceRegion{far, near}, 2, experiences)

	var order []uuid.UUID
	mocks.ledgerRepo.EXPECT().RecordIfNoneSince(ctx, mock.Anything, proximityTestNow.Add(-constants.NotificationCooldown)).
		RunAndReturn(func(_ context.Context, record *entity.ProximityNotification, _ time.Time) (bool, error) {
			order = append(order, record.RegionID)

			return true, nil
		})
	mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(&usecase.DispatchResult{Attempted: 1, Delivered: 1}, nil)
	mocks.ledgerRepo.EXPECT().MarkDelivered(ctx, mock.Anything, true).Return(nil)
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 18.0179, -76.8099))
	require.NoError(t, err)

	require.Equal(t, 2, result.Dispatched())
	assert.Equal(t, []uuid.UUID{near.ID, far.ID}, order)

	first := result.Notifications[0]
	assert.Equal(t, near.ID, first.RegionID)
	assert.Equal(t, 0, first.DistanceMeters)
	assert.True(t, first.Delivered)
	assert.Equal(t, proximityTestNow, first.CreatedAt)
	assert.Equal(t, "Pothole on Main St", first.Payload.Title)
	assert.Equal(t, "You are 0 m away from Pothole on Main St", first.Payload.Body)
	assert.Equal(t, constants.NotificationTypeProximity, first.Payload.Data["type"])
	assert.Equal(t, near.ID.String(), first.Payload.Data["region_id"])
	assert.Equal(t, "https://app.example.com/experiences/"+near.ExperienceID.String(), first.Payload.URL)
	assert.Equal(t, first.Payload.URL, first.Payload.Data["url"])

	second := result.Notifications[1]
	assert.Equal(t, 111, second.DistanceMeters)
	assert.Equal(t, "Nearby experience", second.Payload.Title)
}

func TestProximityService_Evaluate_CooldownSuppresses(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	region := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.expectMatched("user-1", []*entity.GeofenceRegion{region}, 1, nil)
	mocks.ledgerRepo.EXPECT().RecordIfNoneSince(ctx, mock.Anything, mock.Anything).Return(false, nil)
	mocks.metrics.EXPECT().CooldownSuppressed().Return().Once()

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Dispatched())
	assert.Empty(t, result.Failures)
	mocks.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestProximityService_Evaluate_LedgerFailureIsolated(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	broken := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	healthy := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1.0001, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.expectMatched("user-1", []*entity.GeofenceRegion{broken, healthy}, 2, nil)

	mocks.ledgerRepo.EXPECT().
		RecordIfNoneSince(ctx, mock.MatchedBy(func(r *entity.ProximityNotification) bool { return r.RegionID == broken.ID }), mock.Anything).
		Return(false, errors.New("deadlock detected"))
	mocks.ledgerRepo.EXPECT().
		RecordIfNoneSince(ctx, mock.MatchedBy(func(r *entity.ProximityNotification) bool { return r.RegionID == healthy.ID }), mock.Anything).
		Return(true, nil)
	mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(&usecase.DispatchResult{}, nil)
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	require.NoError(t, err)

	require.Equal(t, 1, result.Dispatched())
	assert.Equal(t, healthy.ID, result.Notifications[0].RegionID)
	assert.False(t, result.Notifications[0].Delivered)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, broken.ID, result.Failures[0].RegionID)
	assert.True(t, domainerrors.IsPersistence(result.Failures[0].Err))
}

func TestProximityService_Evaluate_DispatchAndPublishErrorsDoNotFail(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	region := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.expectMatched("user-1", []*entity.GeofenceRegion{region}, 1, nil)
	mocks.ledgerRepo.EXPECT().RecordIfNoneSince(ctx, mock.Anything, mock.Anything).Return(true, nil)
	mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(nil, errors.New("subscription store down"))
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.MatchedBy(func(e *service.DispatchEvent) bool {
		return e.RegionID == region.ID.String() && e.Delivered == 0 && e.UserID == "user-1"
	})).Return(errors.New("topic closed"))

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	require.NoError(t, err)

	require.Equal(t, 1, result.Dispatched())
	assert.Equal(t, 0, result.Notifications[0].DeliveredCount)
	mocks.ledgerRepo.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything, mock.Anything)
}

func TestProximityService_Evaluate_MarkDeliveredFailureKeepsNotification(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	region := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.expectMatched("user-1", []*entity.GeofenceRegion{region}, 1, nil)
	mocks.ledgerRepo.EXPECT().RecordIfNoneSince(ctx, mock.Anything, mock.Anything).Return(true, nil)
	mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(&usecase.DispatchResult{Attempted: 2, Delivered: 1}, nil)
	mocks.ledgerRepo.EXPECT().MarkDelivered(ctx, mock.Anything, true).Return(errors.New("connection reset"))
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.MatchedBy(func(e *service.DispatchEvent) bool {
		return e.RegionID == region.ID.String() && e.Delivered == 1
	})).Return(nil)

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	require.NoError(t, err)

	assert.Empty(t, result.Failures)
	require.Equal(t, 1, result.Dispatched())
	assert.Equal(t, region.ID, result.Notifications[0].RegionID)
	assert.Equal(t, 1, result.Notifications[0].DeliveredCount)
	assert.False(t, result.Notifications[0].Delivered)
}

func TestProximityService_Evaluate_LockError(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	region := &entity.GeofenceRegion{ID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.regionRepo.EXPECT().FindActiveInBox(ctx, mock.Anything).Return([]*entity.GeofenceRegion{region}, nil)
	mocks.metrics.EXPECT().RegionsMatched(1).Return()
	mocks.locker.EXPECT().Lock(ctx, "user-1").Return(nil, context.DeadlineExceeded)

	_, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProximityService_Evaluate_ExperienceLookupFailureUsesGenericCopy(t *testing.T) {
	svc, mocks := createTestProximityService(t)
	ctx := context.Background()

	region := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}
	mocks.regionRepo.EXPECT().FindActiveInBox(ctx, mock.Anything).Return([]*entity.GeofenceRegion{region}, nil)
	mocks.metrics.EXPECT().RegionsMatched(1).Return()
	mocks.locker.EXPECT().Lock(ctx, "user-1").Return(func() {}, nil)
	mocks.experienceRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{region.ExperienceID}).Return(nil, errors.New("timeout"))
	mocks.ledgerRepo.EXPECT().RecordIfNoneSince(ctx, mock.Anything, mock.Anything).Return(true, nil)
	mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(&usecase.DispatchResult{Attempted: 1, Delivered: 1}, nil)
	mocks.ledgerRepo.EXPECT().MarkDelivered(ctx, mock.Anything, true).Return(nil)
	mocks.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	result, err := svc.Evaluate(ctx, createTestLocation("user-1", 1, 1))
	require.NoError(t, err)

	assert.Equal(t, "Nearby experience", result.Notifications[0].Payload.Title)
}
