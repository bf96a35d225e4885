package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProximityNotification is an append-only ledger entry recording that a user was alerted about a region.
type ProximityNotification struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the record.
	UserID         string    `json:"user_id"`         // The alerted user.
	RegionID       uuid.UUID `json:"region_id"`       // The region the user entered.
	ExperienceID   uuid.UUID `json:"experience_id"`   // The experience attached to the region.
	DistanceMeters int       `json:"distance_meters"` // Distance to the region center when fired, rounded to the meter.
	Delivered      bool      `json:"delivered"`       // True when at least one subscription received the push.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of the event; the cooldown is measured from here.
}
