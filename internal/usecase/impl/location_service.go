package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"geofence/config"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	"geofence/internal/errors"
	"geofence/internal/geo"
	"geofence/internal/usecase"
)

type locationService struct {
	locationRepo repository.LocationRepository
	proximityUC  usecase.ProximityUsecase
	metrics      service.MetricsRecorder
	clock        service.Clock
	rejectStale  bool
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	proximityUC usecase.ProximityUsecase,
	metrics service.MetricsRecorder,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		proximityUC:  proximityUC,
		metrics:      metrics,
		clock:        clock,
		rejectStale:  cfg.Proximity.RejectStaleLocations,
		logger:       logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitLocation stores the reported position and evaluates it against active regions
func (srv *locationService) SubmitLocation(ctx context.Context, input *usecase.SubmitLocationInput) (*usecase.SubmitLocationResult, error) {
	if err := validateLocationInput(input); err != nil {
		return nil, err
	}

	location := &entity.UserLocation{
		UserID:     input.UserID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Accuracy:   input.Accuracy,
		ObservedAt: input.ObservedAt.UTC(),
		RecordedAt: srv.clock.Now(),
	}

	applied, err := srv.store(ctx, location)
	if err != nil {
		srv.log(ctx).Error("Failed to store location", slog.Any("error", err), slog.String("user_id", input.UserID))

		return nil, asPersistenceError(err, "failed to store location")
	}
	if !applied {
		srv.log(ctx).Debug("Ignored stale location report",
			slog.String("user_id", input.UserID),
			slog.Time("observed_at", location.ObservedAt),
		)

		return &usecase.SubmitLocationResult{Accepted: false, Location: location}, nil
	}
	srv.metrics.LocationUpdated()

	result := &usecase.SubmitLocationResult{
		Accepted: true,
		Location: location,
	}

	proximity, err := srv.proximityUC.Evaluate(ctx, location)
	if err != nil {
		// the write already succeeded
		srv.log(ctx).Error("Proximity check failed after location update", slog.Any("error", err), slog.String("user_id", input.UserID))
		result.CheckError = err

		return result, nil
	}

	result.Dispatched = proximity.Dispatched()
	result.Notifications = proximity.Notifications

	return result, nil
}

func (srv *locationService) store(ctx context.Context, location *entity.UserLocation) (bool, error) {
	if srv.rejectStale {
		return srv.locationRepo.UpsertIfNewer(ctx, location)
	}

	return true, srv.locationRepo.Upsert(ctx, location)
}

// GetLocation returns the stored location of a user
func (srv *locationService) GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	location, err := srv.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

func validateLocationInput(input *usecase.SubmitLocationInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("location input is required")
	}
	if input.UserID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return domainerrors.ErrInvalidCoordinates.WithDetails(fmt.Sprintf("(%v, %v)", input.Latitude, input.Longitude))
	}
	if !(input.Accuracy > 0) || math.IsInf(input.Accuracy, 0) {
		return domainerrors.ErrInvalidAccuracy.WithDetails(fmt.Sprintf("got %v", input.Accuracy))
	}
	if input.ObservedAt.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("observed_at is required")
	}

	return nil
}
