package usecase

import (
	"context"

	"geofence/internal/domain/entity"
)

// NotificationUsecase exposes the notification ledger to users
type NotificationUsecase interface {
	// GetNotificationHistory lists a user's proximity notifications, newest first
	GetNotificationHistory(ctx context.Context, userID string, limit, offset int) ([]*entity.ProximityNotification, error)
}
