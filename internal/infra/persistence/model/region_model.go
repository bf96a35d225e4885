package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceRegionModel is the GORM-specific struct for the 'geofence_regions' table.
type GeofenceRegionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExperienceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude     float64   `gorm:"type:double precision;not null;index:idx_geofence_regions_center,priority:2"`
	Longitude    float64   `gorm:"type:double precision;not null;index:idx_geofence_regions_center,priority:3"`
	RadiusMeters float64   `gorm:"type:double precision;not null"`
	// Inactive rows are never matched; the flag leads the center index.
	IsActive  bool   `gorm:"not null;default:true;index:idx_geofence_regions_center,priority:1"`
	CreatedBy string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (GeofenceRegionModel) TableName() string {
	return "geofence_regions"
}
