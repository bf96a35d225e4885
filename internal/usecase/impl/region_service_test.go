package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/geo"
	mockRepo "geofence/internal/mocks/repository"
	mockSvc "geofence/internal/mocks/service"
	"geofence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type regionServiceMocks struct {
	regionRepo     *mockRepo.MockRegionRepository
	experienceRepo *mockRepo.MockExperienceRepository
	txManager      *mockRepo.MockTransactionManager
	repoFactory    *mockRepo.MockRepositoryFactory
	qrcodeSvc      *mockSvc.MockQRCodeService
}

var regionTestNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func createTestRegionService(t *testing.T) (usecase.RegionUsecase, *regionServiceMocks) {
	mocks := &regionServiceMocks{
		regionRepo:     mockRepo.NewMockRegionRepository(t),
		experienceRepo: mockRepo.NewMockExperienceRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		repoFactory:    mockRepo.NewMockRepositoryFactory(t),
		qrcodeSvc:      mockSvc.NewMockQRCodeService(t),
	}

	svc := NewRegionService(
		mocks.regionRepo,
		mocks.experienceRepo,
		mocks.txManager,
		mocks.qrcodeSvc,
		newFakeClock(regionTestNow),
		createTestConfig(),
		createTestLogger(),
	)

	return svc, mocks
}

// expectTransaction runs the callback against the mocked factory
func (m *regionServiceMocks) expectTransaction() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		})
	m.repoFactory.EXPECT().NewRegionRepository().Return(m.regionRepo)
}

func TestRegionService_CreateRegion_RadiusBounds(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{name: "zero", radius: 0, wantErr: true},
		{name: "negative", radius: -5, wantErr: true},
		{name: "smallest positive", radius: 0.5},
		{name: "maximum", radius: 10000},
		{name: "above maximum", radius: 10001, wantErr: true},
		{name: "NaN", radius: math.NaN(), wantErr: true},
		{name: "infinite", radius: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := createTestRegionService(t)
			ctx := context.Background()
			experienceID := uuid.New()

			if !tt.wantErr {
				mocks.experienceRepo.EXPECT().FindByID(ctx, experienceID).Return(&entity.Experience{ID: experienceID}, nil)
				mocks.regionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.GeofenceRegion")).Return(nil)
			}

			region, err := svc.CreateRegion(ctx, &usecase.CreateRegionInput{
				ExperienceID: experienceID,
				Latitude:     18.0179,
				Longitude:    -76.8099,
				RadiusMeters: tt.radius,
				CreatedBy:    "user-1",
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
				assert.True(t, domainerrors.IsValidation(err))
				assert.Nil(t, region)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, region.ID)
			assert.True(t, region.IsActive)
			assert.Equal(t, tt.radius, region.RadiusMeters)
			assert.Equal(t, "user-1", region.CreatedBy)
			assert.Equal(t, regionTestNow, region.CreatedAt)
		})
	}
}

func TestRegionService_CreateRegion_InvalidInput(t *testing.T) {
	base := usecase.CreateRegionInput{
		ExperienceID: uuid.New(),
		Latitude:     10,
		Longitude:    10,
		RadiusMeters: 100,
		CreatedBy:    "user-1",
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateRegionInput)
		target error
	}{
		{name: "latitude out of range", mutate: func(in *usecase.CreateRegionInput) { in.Latitude = 90.5 }, target: domainerrors.ErrInvalidCoordinates},
		{name: "longitude out of range", mutate: func(in *usecase.CreateRegionInput) { in.Longitude = -181 }, target: domainerrors.ErrInvalidCoordinates},
		{name: "missing creator", mutate: func(in *usecase.CreateRegionInput) { in.CreatedBy = "" }, target: domainerrors.ErrValidationFailed},
		{name: "missing experience", mutate: func(in *usecase.CreateRegionInput) { in.ExperienceID = uuid.Nil }, target: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestRegionService(t)
			input := base
			tt.mutate(&input)

			_, err := svc.CreateRegion(context.Background(), &input)
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}

func TestRegionService_CreateRegion_UnknownExperience(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	experienceID := uuid.New()

	mocks.experienceRepo.EXPECT().FindByID(ctx, experienceID).Return(nil, repository.ErrExperienceNotFound)

	_, err := svc.CreateRegion(ctx, &usecase.CreateRegionInput{
		ExperienceID: experienceID,
		Latitude:     1,
		Longitude:    1,
		RadiusMeters: 100,
		CreatedBy:    "user-1",
	})

	assert.True(t, domainerrors.IsNotFound(err))
}

func TestRegionService_DeactivateRegion_Owner(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	regionID := uuid.New()

	mocks.expectTransaction()
	mocks.regionRepo.EXPECT().FindByID(ctx, regionID).
		Return(&entity.GeofenceRegion{ID: regionID, IsActive: true, CreatedBy: "owner"}, nil)
	mocks.regionRepo.EXPECT().Deactivate(ctx, regionID).Return(nil)

	require.NoError(t, svc.DeactivateRegion(ctx, regionID, "owner"))
}

func TestRegionService_DeactivateRegion_NonOwner(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	regionID := uuid.New()

	mocks.expectTransaction()
	mocks.regionRepo.EXPECT().FindByID(ctx, regionID).
		Return(&entity.GeofenceRegion{ID: regionID, IsActive: true, CreatedBy: "owner"}, nil)

	err := svc.DeactivateRegion(ctx, regionID, "intruder")

	assert.ErrorIs(t, err, domainerrors.ErrRegionOwnershipViolation)
	assert.True(t, domainerrors.IsAuthorization(err))
	mocks.regionRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestRegionService_DeactivateRegion_NotFound(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	regionID := uuid.New()

	mocks.expectTransaction()
	mocks.regionRepo.EXPECT().FindByID(ctx, regionID).Return(nil, repository.ErrRegionNotFound)

	err := svc.DeactivateRegion(ctx, regionID, "owner")

	assert.True(t, domainerrors.IsNotFound(err))
	assert.ErrorIs(t, err, domainerrors.ErrRegionNotFound)
}

func TestRegionService_DeactivateRegion_AlreadyInactive(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	regionID := uuid.New()

	mocks.expectTransaction()
	mocks.regionRepo.EXPECT().FindByID(ctx, regionID).
		Return(&entity.GeofenceRegion{ID: regionID, IsActive: false, CreatedBy: "owner"}, nil)

	require.NoError(t, svc.DeactivateRegion(ctx, regionID, "owner"))
}

func TestRegionService_DeactivateRegion_Anonymous(t *testing.T) {
	svc, _ := createTestRegionService(t)

	err := svc.DeactivateRegion(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRegionService_ListRegionsNear(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()

	lat, lon := 18.0179, -76.8099
	near := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: lat + 0.001, Longitude: lon, RadiusMeters: 50, IsActive: true}
	nearest := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: lat, Longitude: lon, RadiusMeters: 50, IsActive: true}
	// inside the box corner but beyond the circle
	corner := &entity.GeofenceRegion{ID: uuid.New(), ExperienceID: uuid.New(), Latitude: lat + 0.008, Longitude: lon + 0.008, RadiusMeters: 50, IsActive: true}

	mocks.regionRepo.EXPECT().
		FindActiveInBox(ctx, geo.BoundingBox(lat, lon, 1000)).
		Return([]*entity.GeofenceRegion{near, corner, nearest}, nil)
	mocks.experienceRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{near.ExperienceID, nearest.ExperienceID}).
		Return(map[uuid.UUID]*entity.Experience{
			nearest.ExperienceID: {ID: nearest.ExperienceID, Title: "Pothole on Main St", Description: "Deep"},
		}, nil)

	regions, err := svc.ListRegionsNear(ctx, lat, lon, 1000)
	require.NoError(t, err)
	require.Len(t, regions, 2)

	assert.Equal(t, nearest.ID, regions[0].ID)
	assert.Equal(t, "Pothole on Main St", regions[0].Title)
	assert.InDelta(t, 0, regions[0].DistanceMeters, 1e-9)
	assert.Equal(t, near.ID, regions[1].ID)
	assert.InDelta(t, 111.2, regions[1].DistanceMeters, 0.5)
	assert.Empty(t, regions[1].Title)
}

func TestRegionService_ListRegionsNear_RadiusDefaults(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		expected float64
	}{
		{name: "zero uses default", radius: 0, expected: 5000},
		{name: "negative uses default", radius: -1, expected: 5000},
		{name: "capped", radius: 1e9, expected: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := createTestRegionService(t)
			ctx := context.Background()

			mocks.regionRepo.EXPECT().FindActiveInBox(ctx, geo.BoundingBox(0, 0, tt.expected)).Return(nil, nil)

			regions, err := svc.ListRegionsNear(ctx, 0, 0, tt.radius)
			require.NoError(t, err)
			assert.Empty(t, regions)
		})
	}
}

func TestRegionService_FindCandidateRegions_InvalidCoordinates(t *testing.T) {
	svc, _ := createTestRegionService(t)

	_, err := svc.FindCandidateRegions(context.Background(), math.NaN(), 0, 100)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestRegionService_GenerateRegionQR(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	region := &entity.GeofenceRegion{ID: uuid.New(), IsActive: true}

	mocks.regionRepo.EXPECT().FindByID(ctx, region.ID).Return(region, nil)
	mocks.qrcodeSvc.EXPECT().GenerateRegionQR(region).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateRegionQR(ctx, region.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestRegionService_GenerateRegionQR_Inactive(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	region := &entity.GeofenceRegion{ID: uuid.New(), IsActive: false}

	mocks.regionRepo.EXPECT().FindByID(ctx, region.ID).Return(region, nil)

	_, err := svc.GenerateRegionQR(ctx, region.ID)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestRegionService_ListActiveRegions_Error(t *testing.T) {
	svc, mocks := createTestRegionService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	mocks.regionRepo.EXPECT().FindAllActive(ctx).Return(nil, dbErr)

	_, err := svc.ListActiveRegions(ctx)
	assert.ErrorIs(t, err, dbErr)
}
