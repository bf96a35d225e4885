// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// UserLocation is the latest known position of a user. There is exactly one per user.
type UserLocation struct {
	UserID     string    `json:"user_id"`     // Opaque user identifier issued by the auth collaborator.
	Latitude   float64   `json:"latitude"`    // Degrees, within [-90, 90].
	Longitude  float64   `json:"longitude"`   // Degrees, within [-180, 180].
	Accuracy   float64   `json:"accuracy"`    // Reported GPS accuracy in meters.
	ObservedAt time.Time `json:"observed_at"` // Client-side timestamp of the fix.
	RecordedAt time.Time `json:"recorded_at"` // Server-side timestamp of the write.
}
