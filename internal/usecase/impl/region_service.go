package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"geofence/config"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	"geofence/internal/errors"
	"geofence/internal/geo"
	"geofence/internal/usecase"

	"github.com/google/uuid"
)

type regionService struct {
	regionRepo     repository.RegionRepository
	experienceRepo repository.ExperienceRepository
	txManager      repository.TransactionManager
	qrcodeSvc      service.QRCodeService
	clock          service.Clock
	config         *config.ProximityConfig
	logger         *slog.Logger
}

// NewRegionService creates a new region service instance
func NewRegionService(
	regionRepo repository.RegionRepository,
	experienceRepo repository.ExperienceRepository,
	txManager repository.TransactionManager,
	qrcodeSvc service.QRCodeService,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RegionUsecase {
	return &regionService{
		regionRepo:     regionRepo,
		experienceRepo: experienceRepo,
		txManager:      txManager,
		qrcodeSvc:      qrcodeSvc,
		clock:          clock,
		config:         cfg.Proximity,
		logger:         logger,
	}
}

func (srv *regionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRegion validates and stores a new active region
func (srv *regionService) CreateRegion(ctx context.Context, input *usecase.CreateRegionInput) (*entity.GeofenceRegion, error) {
	if err := srv.validateCreateInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.experienceRepo.FindByID(ctx, input.ExperienceID); err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return nil, domainerrors.ErrExperienceNotFound.WithDetails(input.ExperienceID.String())
		}

		return nil, errors.Wrap(err, "failed to find experience")
	}

	region := &entity.GeofenceRegion{
		ID:           uuid.New(),
		ExperienceID: input.ExperienceID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: input.RadiusMeters,
		IsActive:     true,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    srv.clock.Now(),
	}

	if err := srv.regionRepo.Create(ctx, region); err != nil {
		srv.log(ctx).Error("Failed to create region", slog.Any("error", err), slog.String("experience_id", input.ExperienceID.String()))

		return nil, errors.Wrap(err, "failed to create region")
	}

	srv.log(ctx).Info("Region created",
		slog.String("region_id", region.ID.String()),
		slog.Float64("radius_meters", region.RadiusMeters),
	)

	return region, nil
}

func (srv *regionService) validateCreateInput(input *usecase.CreateRegionInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("region input is required")
	}
	if input.CreatedBy == "" {
		return domainerrors.ErrValidationFailed.WithDetails("creator is required")
	}
	if input.ExperienceID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("experience_id is required")
	}
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return domainerrors.ErrInvalidCoordinates.WithDetails(fmt.Sprintf("(%v, %v)", input.Latitude, input.Longitude))
	}
	// NaN fails both comparisons
	if !(input.RadiusMeters > 0 && input.RadiusMeters <= srv.config.MaxRegionRadius) {
		return domainerrors.ErrInvalidRadius.WithDetails(fmt.Sprintf("got %v meters", input.RadiusMeters))
	}

	return nil
}

// DeactivateRegion soft-deletes a region owned by requestedBy
func (srv *regionService) DeactivateRegion(ctx context.Context, regionID uuid.UUID, requestedBy string) error {
	if requestedBy == "" {
		return domainerrors.ErrUnauthorized
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		regionRepo := repoFactory.NewRegionRepository()

		region, err := regionRepo.FindByID(ctx, regionID)
		if err != nil {
			if errors.Is(err, repository.ErrRegionNotFound) {
				return domainerrors.ErrRegionNotFound.WithDetails(regionID.String())
			}

			return errors.Wrap(err, "failed to find region")
		}

		if region.CreatedBy != requestedBy {
			return domainerrors.ErrRegionOwnershipViolation
		}

		if !region.IsActive {
			return nil
		}

		return regionRepo.Deactivate(ctx, regionID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to deactivate region",
			slog.Any("error", err),
			slog.String("region_id", regionID.String()),
			slog.String("requested_by", requestedBy),
		)

		return err
	}

	srv.log(ctx).Info("Region deactivated", slog.String("region_id", regionID.String()))

	return nil
}

// GetRegion returns a region by ID
func (srv *regionService) GetRegion(ctx context.Context, regionID uuid.UUID) (*entity.GeofenceRegion, error) {
	region, err := srv.regionRepo.FindByID(ctx, regionID)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, domainerrors.ErrRegionNotFound.WithDetails(regionID.String())
		}

		return nil, errors.Wrap(err, "failed to find region")
	}

	return region, nil
}

// FindCandidateRegions applies the bounding-box pre-filter
func (srv *regionService) FindCandidateRegions(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.GeofenceRegion, error) {
	if !geo.ValidCoordinate(lat, lon) {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(fmt.Sprintf("(%v, %v)", lat, lon))
	}

	regions, err := srv.regionRepo.FindActiveInBox(ctx, geo.BoundingBox(lat, lon, srv.searchRadius(radiusMeters)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate regions")
	}

	return regions, nil
}

// ListRegionsNear returns active regions whose center is within radiusMeters, nearest first
func (srv *regionService) ListRegionsNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.RegionWithExperience, error) {
	radiusMeters = srv.searchRadius(radiusMeters)

	candidates, err := srv.FindCandidateRegions(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	nearby := make([]*entity.RegionWithExperience, 0, len(candidates))
	experienceIDs := make([]uuid.UUID, 0, len(candidates))
	for _, region := range candidates {
		distance := geo.DistanceMeters(lat, lon, region.Latitude, region.Longitude)
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &entity.RegionWithExperience{
			GeofenceRegion: *region,
			DistanceMeters: distance,
		})
		experienceIDs = append(experienceIDs, region.ExperienceID)
	}

	if len(nearby) == 0 {
		return nearby, nil
	}

	experiences, err := srv.experienceRepo.FindByIDs(ctx, experienceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load experiences")
	}

	for _, item := range nearby {
		if experience, ok := experiences[item.ExperienceID]; ok {
			item.Title = experience.Title
			item.Description = experience.Description
		}
	}

	slices.SortStableFunc(nearby, func(a, b *entity.RegionWithExperience) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return nearby, nil
}

// ListActiveRegions returns all active regions, newest first
func (srv *regionService) ListActiveRegions(ctx context.Context) ([]*entity.GeofenceRegion, error) {
	regions, err := srv.regionRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active regions")
	}

	return regions, nil
}

// GenerateRegionQR renders a deep-link QR code for an active region
func (srv *regionService) GenerateRegionQR(ctx context.Context, regionID uuid.UUID) ([]byte, error) {
	region, err := srv.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	if !region.IsActive {
		return nil, domainerrors.ErrRegionNotFound.WithDetails("region is inactive")
	}

	png, err := srv.qrcodeSvc.GenerateRegionQR(region)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate region QR code")
	}

	return png, nil
}

// searchRadius falls back to the configured default and caps caller input
func (srv *regionService) searchRadius(radiusMeters float64) float64 {
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		return srv.config.SearchRadius
	}

	return math.Min(radiusMeters, srv.config.MaxSearchRadius)
}
