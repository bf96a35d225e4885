package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"geofence/config"
	deliverycontext "geofence/internal/delivery/context"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	"geofence/internal/errors"
	"geofence/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type dispatchService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	sender           service.PushSender
	metrics          service.MetricsRecorder
	maxConcurrency   int
	deliveryTimeout  time.Duration
	logger           *slog.Logger
}

// NewDispatchService creates the push fan-out service. A nil sender disables delivery.
func NewDispatchService(
	subscriptionRepo repository.PushSubscriptionRepository,
	sender service.PushSender,
	metrics service.MetricsRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		subscriptionRepo: subscriptionRepo,
		sender:           sender,
		metrics:          metrics,
		maxConcurrency:   cfg.Push.MaxConcurrency,
		deliveryTimeout:  cfg.Push.DeliveryTimeout,
		logger:           logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch sends the payload to every subscription of the user and waits for all deliveries to settle
func (srv *dispatchService) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
	if req == nil || req.UserID == "" || req.Payload == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dispatch request requires user and payload")
	}

	if srv.sender == nil {
		srv.log(ctx).Debug("No push sender configured, skipping dispatch", slog.String("user_id", req.UserID))

		return &usecase.DispatchResult{}, nil
	}

	subscriptions, err := srv.subscriptionRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load push subscriptions")
	}
	if len(subscriptions) == 0 {
		return &usecase.DispatchResult{}, nil
	}

	start := time.Now()
	var delivered atomic.Int64

	group := new(errgroup.Group)
	group.SetLimit(srv.maxConcurrency)

	for _, subscription := range subscriptions {
		group.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, srv.deliveryTimeout)
			defer cancel()

			if err := srv.sender.Send(sendCtx, subscription, req.Payload); err != nil {
				outcome := service.DeliveryOutcomeFailed
				var deliveryErr *domainerrors.DeliveryError
				if errors.As(err, &deliveryErr) && deliveryErr.Expired() {
					outcome = service.DeliveryOutcomeExpired
				}
				srv.metrics.DeliveryObserved(outcome)
				srv.log(ctx).Warn("Push delivery failed",
					slog.Any("error", err),
					slog.String("notification_id", req.NotificationID.String()),
					slog.String("subscription_id", subscription.ID.String()),
					slog.String("platform", subscription.Platform),
					slog.String("outcome", outcome),
				)

				// a failed endpoint never aborts the others
				return nil
			}

			srv.metrics.DeliveryObserved(service.DeliveryOutcomeDelivered)
			delivered.Add(1)

			return nil
		})
	}
	_ = group.Wait()

	result := &usecase.DispatchResult{
		Attempted: len(subscriptions),
		Delivered: int(delivered.Load()),
	}
	srv.metrics.DispatchObserved(time.Since(start))

	srv.log(ctx).Info("Dispatch settled",
		slog.String("notification_id", req.NotificationID.String()),
		slog.Int("attempted", result.Attempted),
		slog.Int("delivered", result.Delivered),
	)

	return result, nil
}
