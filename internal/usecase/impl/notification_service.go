package impl

import (
	"context"
	"log/slog"

	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/errors"
	"geofence/internal/usecase"
)

type notificationService struct {
	ledgerRepo repository.LedgerRepository
	logger     *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(ledgerRepo repository.LedgerRepository, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// GetNotificationHistory lists the user's ledger records, newest first
func (srv *notificationService) GetNotificationHistory(
	ctx context.Context,
	userID string,
	limit, offset int,
) ([]*entity.ProximityNotification, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	limit, offset = normalizePage(limit, offset)

	records, err := srv.ledgerRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to list notifications",
			slog.Any("error", err),
			slog.String("user_id", userID),
		)

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return records, nil
}

func normalizePage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = constants.DefaultHistoryPageSize
	case limit > constants.MaxHistoryPageSize:
		limit = constants.MaxHistoryPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
