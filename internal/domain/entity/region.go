package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceRegion is a circular area around an experience that alerts nearby users.
type GeofenceRegion struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the region.
	ExperienceID uuid.UUID  `json:"experience_id"` // The experience this region advertises.
	Latitude     float64    `json:"latitude"`      // Center latitude in degrees.
	Longitude    float64    `json:"longitude"`     // Center longitude in degrees.
	RadiusMeters float64    `json:"radius_meters"` // Radius in meters, within (0, 10000].
	IsActive     bool       `json:"is_active"`     // Inactive regions are never matched.
	CreatedBy    string     `json:"created_by"`    // User who created the region; the only one allowed to deactivate it.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when the region was created.
	UpdatedAt    *time.Time `json:"updated_at"`    // Timestamp of the last modification, if any.
}

// RegionWithExperience is a region joined with the copy of its owning experience.
type RegionWithExperience struct {
	GeofenceRegion
	Title          string  `json:"title"`           // Experience title.
	Description    string  `json:"description"`     // Experience description.
	DistanceMeters float64 `json:"distance_meters"` // Distance from the query point.
}
