package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a delivery endpoint owned by a user. It is managed by an external collaborator.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    string    `json:"user_id"`    // Owner of the endpoint.
	Platform  string    `json:"platform"`   // "webpush" or "fcm".
	Endpoint  string    `json:"endpoint"`   // Web Push endpoint URL, or the FCM registration token.
	P256dh    string    `json:"p256dh"`     // Client public key (Web Push only).
	Auth      string    `json:"auth"`       // Client auth secret (Web Push only).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the endpoint was registered.
}
