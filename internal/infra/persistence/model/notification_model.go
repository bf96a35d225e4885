package model

import (
	"time"

	"github.com/google/uuid"
)

// ProximityNotificationModel is the GORM-specific struct for the 'proximity_notifications' table.
// Rows are append-only apart from the delivered flag.
type ProximityNotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         string    `gorm:"type:text;not null;index:idx_proximity_notifications_pair,priority:1;index:idx_proximity_notifications_user,priority:1"`
	RegionID       uuid.UUID `gorm:"type:uuid;not null;index:idx_proximity_notifications_pair,priority:2"`
	ExperienceID   uuid.UUID `gorm:"type:uuid;not null"`
	DistanceMeters int       `gorm:"not null"`
	Delivered      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false;index:idx_proximity_notifications_pair,priority:3,sort:desc;index:idx_proximity_notifications_user,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ProximityNotificationModel) TableName() string {
	return "proximity_notifications"
}
