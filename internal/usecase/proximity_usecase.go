package usecase

import (
	"context"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/service"

	"github.com/google/uuid"
)

// DispatchedNotification is a ledger record created by a proximity check with the alert that was sent
type DispatchedNotification struct {
	*entity.ProximityNotification
	Payload        *service.PushPayload `json:"payload"`
	Attempted      int                  `json:"attempted"`
	DeliveredCount int                  `json:"delivered_count"`
}

// RegionFailure records a region that matched but could not be processed
type RegionFailure struct {
	RegionID uuid.UUID `json:"region_id"`
	Err      error     `json:"-"`
}

// ProximityResult lists the notifications created by one proximity check, nearest region first
type ProximityResult struct {
	Notifications []*DispatchedNotification `json:"notifications"`
	Failures      []RegionFailure           `json:"-"`
}

// Dispatched returns how many regions fired
func (r *ProximityResult) Dispatched() int {
	if r == nil {
		return 0
	}

	return len(r.Notifications)
}

// ProximityUsecase defines the proximity engine
type ProximityUsecase interface {
	// CheckProximity evaluates the stored location of a user. A user with no location yields an empty result.
	CheckProximity(ctx context.Context, userID string) (*ProximityResult, error)

	// Evaluate runs candidate selection, distance filtering, cooldown and dispatch for a location
	Evaluate(ctx context.Context, location *entity.UserLocation) (*ProximityResult, error)
}
