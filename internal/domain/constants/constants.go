// Package constants holds domain-wide fixed values.
package constants

import "time"

// Geofence defaults. Config may override the operational ones.
const (
	// MaxRegionRadiusMeters is the largest radius a region may be created with.
	MaxRegionRadiusMeters = 10000.0

	// DefaultSearchRadiusMeters is the candidate search radius around a user position.
	// Regions whose center lies further away are not matched even if their circle reaches the user.
	DefaultSearchRadiusMeters = 5000.0

	// NotificationCooldown is the minimum gap between two notifications for one (user, region) pair.
	NotificationCooldown = 3600 * time.Second

	// DefaultDeliveryTimeout bounds a single push delivery.
	DefaultDeliveryTimeout = 10 * time.Second

	// DefaultDispatchConcurrency bounds in-flight deliveries for one dispatch.
	DefaultDispatchConcurrency = 8

	// MaxHistoryPageSize caps notification history pages.
	MaxHistoryPageSize = 100

	// DefaultHistoryPageSize is used when the caller omits a limit.
	DefaultHistoryPageSize = 20
)

// Push subscription platforms
const (
	PlatformWebPush = "webpush"
	PlatformFCM     = "fcm"
)

// Pub/Sub providers for dispatch events
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// NotificationTypeProximity tags push payloads and dispatch events.
const NotificationTypeProximity = "proximity_alert"
