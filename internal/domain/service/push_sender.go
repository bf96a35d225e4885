package service

import (
	"context"

	"geofence/internal/domain/entity"
)

// PushPayload is the platform-neutral content of a proximity alert.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	URL   string            `json:"url,omitempty"`
	Data  map[string]string `json:"data"`
}

// PushSender delivers a payload to a single subscription endpoint.
type PushSender interface {
	// Send delivers the payload. Failures are returned as *errors.DeliveryError.
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) error
}
