package usecase

import (
	"context"

	"geofence/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRegionInput describes a new geofence region
type CreateRegionInput struct {
	ExperienceID uuid.UUID
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedBy    string
}

// RegionUsecase defines the interface for region management and spatial lookup
type RegionUsecase interface {
	// CreateRegion validates and stores a new active region
	CreateRegion(ctx context.Context, input *CreateRegionInput) (*entity.GeofenceRegion, error)

	// DeactivateRegion soft-deletes a region. Only its creator may do so.
	DeactivateRegion(ctx context.Context, regionID uuid.UUID, requestedBy string) error

	// GetRegion returns a region by ID
	GetRegion(ctx context.Context, regionID uuid.UUID) (*entity.GeofenceRegion, error)

	// FindCandidateRegions returns active regions whose center falls in the bounding box of the circle.
	// The result is a superset of the regions within radiusMeters; callers filter by exact distance.
	FindCandidateRegions(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.GeofenceRegion, error)

	// ListRegionsNear returns active regions within radiusMeters joined with experience copy, nearest first
	ListRegionsNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.RegionWithExperience, error)

	// ListActiveRegions returns all active regions, newest first
	ListActiveRegions(ctx context.Context) ([]*entity.GeofenceRegion, error)

	// GenerateRegionQR renders a QR code linking to the region
	GenerateRegionQR(ctx context.Context, regionID uuid.UUID) ([]byte, error)
}
