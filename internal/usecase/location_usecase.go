package usecase

import (
	"context"
	"time"

	"geofence/internal/domain/entity"
)

// SubmitLocationInput is a location report from a client
type SubmitLocationInput struct {
	UserID     string
	Latitude   float64
	Longitude  float64
	Accuracy   float64
	ObservedAt time.Time
}

// SubmitLocationResult is the outcome of a location report and the proximity check it triggered
type SubmitLocationResult struct {
	Accepted      bool                      `json:"accepted"`      // False when a stale report was ignored.
	Location      *entity.UserLocation      `json:"location"`      // The stored location.
	Dispatched    int                       `json:"dispatched"`    // Number of regions that fired.
	Notifications []*DispatchedNotification `json:"notifications"` // Records created by this check.
	CheckError    error                     `json:"-"`             // Proximity failure after a successful write.
}

// LocationUsecase defines the interface for location ingestion
type LocationUsecase interface {
	// SubmitLocation validates and stores a location, then runs the proximity check synchronously.
	// Storage failures fail the call; proximity failures are reported in the result.
	SubmitLocation(ctx context.Context, input *SubmitLocationInput) (*SubmitLocationResult, error)

	// GetLocation returns the stored location of a user
	GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error)
}
