package service

import (
	"context"
	"time"
)

// DispatchEvent describes one proximity alert fan-out for analytics sinks.
type DispatchEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	RegionID       string    `json:"region_id"`
	ExperienceID   string    `json:"experience_id"`
	DistanceMeters int       `json:"distance_meters"`
	Attempted      int       `json:"attempted"`
	Delivered      int       `json:"delivered"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher publishes dispatch events to a message bus
type EventPublisher interface {
	// PublishDispatchEvent publishes the outcome of one dispatch
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
