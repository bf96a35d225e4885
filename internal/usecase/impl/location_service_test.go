package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
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

var locationTestNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func createTestLocationService(t *testing.T, rejectStale bool) (
	usecase.LocationUsecase,
	*mockRepo.MockLocationRepository,
	*mockUsecase.MockProximityUsecase,
	*mockSvc.MockMetricsRecorder,
) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	cfg := createTestConfig()
	cfg.Proximity.RejectStaleLocations = rejectStale

	svc := NewLocationService(locationRepo, proximityUC, metrics, newFakeClock(locationTestNow), cfg, createTestLogger())

	return svc, locationRepo, proximityUC, metrics
}

func createTestLocationInput() *usecase.SubmitLocationInput {
	return &usecase.SubmitLocationInput{
		UserID:     "user-1",
		Latitude:   18.0179,
		Longitude:  -76.8099,
		Accuracy:   8,
		ObservedAt: locationTestNow.Add(-2 * time.Second).In(time.FixedZone("EST", -5*3600)),
	}
}

func TestLocationService_SubmitLocation_Success(t *testing.T) {
	svc, locationRepo, proximityUC, metrics := createTestLocationService(t, false)
	ctx := context.Background()
	input := createTestLocationInput()

	notification := &usecase.DispatchedNotification{
		ProximityNotification: &entity.ProximityNotification{ID: uuid.New(), UserID: "user-1"},
	}

	locationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserLocation")).Return(nil)
	metrics.EXPECT().LocationUpdated().Return().Once()
	proximityUC.EXPECT().Evaluate(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(&usecase.ProximityResult{Notifications: []*usecase.DispatchedNotification{notification}}, nil)

	result, err := svc.SubmitLocation(ctx, input)
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, 1, result.Dispatched)
	assert.Equal(t, notification, result.Notifications[0])
	assert.Nil(t, result.CheckError)
	assert.Equal(t, time.UTC, result.Location.ObservedAt.Location())
	assert.True(t, input.ObservedAt.Equal(result.Location.ObservedAt))
	assert.Equal(t, locationTestNow, result.Location.RecordedAt)
}

func TestLocationService_SubmitLocation_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.SubmitLocationInput)
		target error
	}{
		{name: "empty user", mutate: func(in *usecase.SubmitLocationInput) { in.UserID = "" }, target: domainerrors.ErrValidationFailed},
		{name: "latitude out of range", mutate: func(in *usecase.SubmitLocationInput) { in.Latitude = -91 }, target: domainerrors.ErrInvalidCoordinates},
		{name: "longitude NaN", mutate: func(in *usecase.SubmitLocationInput) { in.Longitude = math.NaN() }, target: domainerrors.ErrInvalidCoordinates},
		{name: "zero accuracy", mutate: func(in *usecase.SubmitLocationInput) { in.Accuracy = 0 }, target: domainerrors.ErrInvalidAccuracy},
		{name: "negative accuracy", mutate: func(in *usecase.SubmitLocationInput) { in.Accuracy = -3 }, target: domainerrors.ErrInvalidAccuracy},
		{name: "infinite accuracy", mutate: func(in *usecase.SubmitLocationInput) { in.Accuracy = math.Inf(1) }, target: domainerrors.ErrInvalidAccuracy},
		{name: "zero timestamp", mutate: func(in *usecase.SubmitLocationInput) { in.ObservedAt = time.Time{} }, target: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := createTestLocationService(t, false)
			input := createTestLocationInput()
			tt.mutate(input)

			_, err := svc.SubmitLocation(context.Background(), input)
			assert.ErrorIs(t, err, tt.target)
			assert.True(t, domainerrors.IsValidation(err))
		})
	}
}

func TestLocationService_SubmitLocation_StoreFailure(t *testing.T) {
	svc, locationRepo, _, _ := createTestLocationService(t, false)
	ctx := context.Background()

	locationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.SubmitLocation(ctx, createTestLocationInput())
	require.Error(t, err)
	assert.True(t, domainerrors.IsPersistence(err))
}

func TestLocationService_SubmitLocation_ProximityFailureIsReported(t *testing.T) {
	svc, locationRepo, proximityUC, metrics := createTestLocationService(t, false)
	ctx := context.Background()
	checkErr := errors.New("region index unavailable")

	locationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	metrics.EXPECT().LocationUpdated().Return()
	proximityUC.EXPECT().Evaluate(ctx, mock.Anything).Return(nil, checkErr)

	result, err := svc.SubmitLocation(ctx, createTestLocationInput())
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, 0, result.Dispatched)
	assert.ErrorIs(t, result.CheckError, checkErr)
}

func TestLocationService_SubmitLocation_StaleIgnored(t *testing.T) {
	svc, locationRepo, _, _ := createTestLocationService(t, true)
	ctx := context.Background()

	locationRepo.EXPECT().UpsertIfNewer(ctx, mock.Anything).Return(false, nil)

	result, err := svc.SubmitLocation(ctx, createTestLocationInput())
	require.NoError(t, err)

	assert.False(t, result.Accepted)
	assert.Equal(t, 0, result.Dispatched)
}

func TestLocationService_SubmitLocation_NewerApplied(t *testing.T) {
	svc, locationRepo, proximityUC, metrics := createTestLocationService(t, true)
	ctx := context.Background()

	locationRepo.EXPECT().UpsertIfNewer(ctx, mock.Anything).Return(true, nil)
	metrics.EXPECT().LocationUpdated().Return()
	proximityUC.EXPECT().Evaluate(ctx, mock.Anything).Return(&usecase.ProximityResult{}, nil)

	result, err := svc.SubmitLocation(ctx, createTestLocationInput())
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	locationRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestLocationService_GetLocation(t *testing.T) {
	svc, locationRepo, _, _ := createTestLocationService(t, false)
	ctx := context.Background()

	locationRepo.EXPECT().FindByUserID(ctx, "user-1").Return(&entity.UserLocation{UserID: "user-1"}, nil)
	locationRepo.EXPECT().FindByUserID(ctx, "user-2").Return(nil, repository.ErrLocationNotFound)

	location, err := svc.GetLocation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", location.UserID)

	_, err = svc.GetLocation(ctx, "user-2")
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
