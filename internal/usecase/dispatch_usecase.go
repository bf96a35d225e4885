package usecase

import (
	"context"

	"geofence/internal/domain/service"

	"github.com/google/uuid"
)

// DispatchRequest is one proximity alert to fan out to a user's endpoints
type DispatchRequest struct {
	NotificationID uuid.UUID
	UserID         string
	Payload        *service.PushPayload
}

// DispatchResult counts attempted and successful deliveries
type DispatchResult struct {
	Attempted int `json:"attempted"`
	Delivered int `json:"delivered"`
}

// DispatchUsecase delivers proximity alerts to every subscription of a user
type DispatchUsecase interface {
	// Dispatch delivers concurrently and waits for every delivery to settle.
	// Individual delivery failures never fail the call; only the subscription lookup can.
	Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error)
}
