package repository

import (
	"context"

	"geofence/internal/domain/entity"
	"geofence/internal/geo"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for region persistence.
var (
	// ErrRegionNotFound is returned when a region is not found.
	ErrRegionNotFound = errors.New("region not found")
)

// RegionRepository defines the interface for geofence region persistence.
type RegionRepository interface {
	// Create persists a new region.
	Create(ctx context.Context, region *entity.GeofenceRegion) error

	// FindByID retrieves a region regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceRegion, error)

	// FindActiveInBox returns active regions whose center lies inside the box.
	FindActiveInBox(ctx context.Context, box geo.Box) ([]*entity.GeofenceRegion, error)

	// FindAllActive returns every active region, newest first.
	FindAllActive(ctx context.Context) ([]*entity.GeofenceRegion, error)

	// Deactivate soft-deletes a region.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
