package repository

import (
	"context"

	"geofence/internal/domain/entity"
)

// PushSubscriptionRepository is the read side of the push subscription collaborator.
type PushSubscriptionRepository interface {
	// FindByUserID retrieves every endpoint registered by a user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.PushSubscription, error)
}
