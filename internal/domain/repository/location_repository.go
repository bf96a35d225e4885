// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"geofence/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no location has been recorded for a user.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository stores the latest position of each user.
type LocationRepository interface {
	// Upsert writes the location keyed by user ID in a single round trip. The last write wins.
	Upsert(ctx context.Context, location *entity.UserLocation) error

	// UpsertIfNewer writes the location only when it is not older than the stored one.
	// It reports whether the write was applied.
	UpsertIfNewer(ctx context.Context, location *entity.UserLocation) (bool, error)

	// FindByUserID retrieves the stored location of a user.
	FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error)
}
