package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"geofence/config"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	"geofence/internal/errors"
	"geofence/internal/geo"
	"geofence/internal/usecase"

	"github.com/google/uuid"
)

// ProximityDeps groups the collaborators of the proximity engine
type ProximityDeps struct {
	LocationRepo   repository.LocationRepository
	RegionRepo     repository.RegionRepository
	ExperienceRepo repository.ExperienceRepository
	LedgerRepo     repository.LedgerRepository
	Dispatcher     usecase.DispatchUsecase
	Locker         service.UserLocker
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Clock          service.Clock
}

type proximityService struct {
	locationRepo   repository.LocationRepository
	regionRepo     repository.RegionRepository
	experienceRepo repository.ExperienceRepository
	ledgerRepo     repository.LedgerRepository
	dispatcher     usecase.DispatchUsecase
	locker         service.UserLocker
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	clock          service.Clock
	searchRadius   float64
	cooldown       time.Duration
	deepLinkBase   string
	logger         *slog.Logger
}

type regionMatch struct {
	region   *entity.GeofenceRegion
	distance float64
}

// NewProximityService creates the proximity engine
func NewProximityService(deps ProximityDeps, cfg *config.Config, logger *slog.Logger) usecase.ProximityUsecase {
	return &proximityService{
		locationRepo:   deps.LocationRepo,
		regionRepo:     deps.RegionRepo,
		experienceRepo: deps.ExperienceRepo,
		ledgerRepo:     deps.LedgerRepo,
		dispatcher:     deps.Dispatcher,
		locker:         deps.Locker,
		publisher:      deps.Publisher,
		metrics:        deps.Metrics,
		clock:          deps.Clock,
		searchRadius:   cfg.Proximity.SearchRadius,
		cooldown:       cfg.Proximity.Cooldown,
		deepLinkBase:   strings.TrimRight(cfg.Push.DeepLinkBaseURL, "/"),
		logger:         logger,
	}
}

func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckProximity evaluates the stored location of a user
func (srv *proximityService) CheckProximity(ctx context.Context, userID string) (*usecase.ProximityResult, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	location, err := srv.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			srv.log(ctx).Debug("No stored location, skipping proximity check", slog.String("user_id", userID))

			return &usecase.ProximityResult{}, nil
		}

		return nil, errors.Wrap(err, "failed to load user location")
	}

	return srv.Evaluate(ctx, location)
}

// Evaluate matches the location against active regions and fires alerts outside the cooldown window
func (srv *proximityService) Evaluate(ctx context.Context, location *entity.UserLocation) (*usecase.ProximityResult, error) {
	if location == nil || location.UserID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location with user id is required")
	}

	matches, err := srv.matchRegions(ctx, location)
	if err != nil {
		return nil, err
	}

	result := &usecase.ProximityResult{}
	if len(matches) == 0 {
		return result, nil
	}
	srv.metrics.RegionsMatched(len(matches))

	unlock, err := srv.locker.Lock(ctx, location.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire user lock")
	}
	defer unlock()

	experiences := srv.loadExperiences(ctx, matches)
	now := srv.clock.Now()

	for _, match := range matches {
		notification, err := srv.fire(ctx, location.UserID, match, experiences[match.region.ExperienceID], now)
		if err != nil {
			srv.log(ctx).Error("Failed to process matched region",
				slog.Any("error", err),
				slog.String("user_id", location.UserID),
				slog.String("region_id", match.region.ID.String()),
			)
			result.Failures = append(result.Failures, usecase.RegionFailure{RegionID: match.region.ID, Err: err})

			continue
		}
		if notification != nil {
			result.Notifications = append(result.Notifications, notification)
		}
	}

	srv.log(ctx).Info("Proximity check completed",
		slog.String("user_id", location.UserID),
		slog.Int("matched", len(matches)),
		slog.Int("dispatched", result.Dispatched()),
		slog.Int("failed", len(result.Failures)),
	)

	return result, nil
}

// matchRegions returns the regions containing the location, nearest first
func (srv *proximityService) matchRegions(ctx context.Context, location *entity.UserLocation) ([]regionMatch, error) {
	box := geo.BoundingBox(location.Latitude, location.Longitude, srv.searchRadius)

	candidates, err := srv.regionRepo.FindActiveInBox(ctx, box)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate regions")
	}

	matches := make([]regionMatch, 0, len(candidates))
	for _, region := range candidates {
		distance := geo.DistanceMeters(location.Latitude, location.Longitude, region.Latitude, region.Longitude)
		if distance <= region.RadiusMeters {
			matches = append(matches, regionMatch{region: region, distance: distance})
		}
	}

	slices.SortStableFunc(matches, func(a, b regionMatch) int {
		return cmp.Compare(a.distance, b.distance)
	})

	return matches, nil
}

func (srv *proximityService) loadExperiences(ctx context.Context, matches []regionMatch) map[uuid.UUID]*entity.Experience {
	ids := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.region.ExperienceID)
	}

	experiences, err := srv.experienceRepo.FindByIDs(ctx, ids)
	if err != nil {
		// alerts still go out with generic copy
		srv.log(ctx).Warn("Failed to load experiences for notification copy", slog.Any("error", err))

		return map[uuid.UUID]*entity.Experience{}
	}

	return experiences
}

// fire claims the cooldown slot, dispatches and records the outcome. A nil notification means the pair is cooling down.
func (srv *proximityService) fire(
	ctx context.Context,
	userID string,
	match regionMatch,
	experience *entity.Experience,
	now time.Time,
) (*usecase.DispatchedNotification, error) {
	record := &entity.ProximityNotification{
		ID:             uuid.New(),
		UserID:         userID,
		RegionID:       match.region.ID,
		ExperienceID:   match.region.ExperienceID,
		DistanceMeters: int(math.Round(match.distance)),
		CreatedAt:      now,
	}

	inserted, err := srv.ledgerRepo.RecordIfNoneSince(ctx, record, now.Add(-srv.cooldown))
	if err != nil {
		return nil, asPersistenceError(err, "failed to record notification")
	}
	if !inserted {
		srv.metrics.CooldownSuppressed()
		srv.log(ctx).Debug("Region in cooldown",
			slog.String("user_id", userID),
			slog.String("region_id", match.region.ID.String()),
		)

		return nil, nil
	}

	payload := srv.buildPayload(match.region, experience, record.DistanceMeters)

	dispatched, err := srv.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		NotificationID: record.ID,
		UserID:         userID,
		Payload:        payload,
	})
	if err != nil {
		srv.log(ctx).Warn("Dispatch failed", slog.Any("error", err), slog.String("notification_id", record.ID.String()))
		dispatched = &usecase.DispatchResult{}
	}

	notification := &usecase.DispatchedNotification{
		ProximityNotification: record,
		Payload:               payload,
		Attempted:             dispatched.Attempted,
		DeliveredCount:        dispatched.Delivered,
	}

	if dispatched.Delivered > 0 {
		// the user has been alerted already, so a failed flag update only leaves the record undelivered
		if err := srv.ledgerRepo.MarkDelivered(ctx, record.ID, true); err != nil {
			srv.log(ctx).Error("Failed to mark notification delivered",
				slog.Any("error", err),
				slog.String("notification_id", record.ID.String()),
			)
		} else {
			record.Delivered = true
		}
	}

	srv.publish(ctx, record, dispatched)

	return notification, nil
}

func (srv *proximityService) buildPayload(region *entity.GeofenceRegion, experience *entity.Experience, distance int) *service.PushPayload {
	title := "Nearby experience"
	if experience != nil && experience.Title != "" {
		title = experience.Title
	}

	payload := &service.PushPayload{
		Title: title,
		Body:  fmt.Sprintf("You are %d m away from %s", distance, title),
		Data: map[string]string{
			"type":            constants.NotificationTypeProximity,
			"region_id":       region.ID.String(),
			"experience_id":   region.ExperienceID.String(),
			"latitude":        strconv.FormatFloat(region.Latitude, 'f', -1, 64),
			"longitude":       strconv.FormatFloat(region.Longitude, 'f', -1, 64),
			"distance_meters": strconv.Itoa(distance),
		},
	}
	if srv.deepLinkBase != "" {
		payload.URL = srv.deepLinkBase + "/experiences/" + region.ExperienceID.String()
		payload.Data["url"] = payload.URL
	}

	return payload
}

func (srv *proximityService) publish(ctx context.Context, record *entity.ProximityNotification, dispatched *usecase.DispatchResult) {
	event := &service.DispatchEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           constants.NotificationTypeProximity,
		NotificationID: record.ID.String(),
		UserID:         record.UserID,
		RegionID:       record.RegionID.String(),
		ExperienceID:   record.ExperienceID.String(),
		DistanceMeters: record.DistanceMeters,
		Attempted:      dispatched.Attempted,
		Delivered:      dispatched.Delivered,
		OccurredAt:     record.CreatedAt,
	}

	if err := srv.publisher.PublishDispatchEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish dispatch event",
			slog.Any("error", err),
			slog.String("notification_id", event.NotificationID),
		)
	}
}

func asPersistenceError(err error, details string) error {
	if domainerrors.IsPersistence(err) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
