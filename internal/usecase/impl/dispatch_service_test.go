package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/service"
	mockRepo "geofence/internal/mocks/repository"
	mockSvc "geofence/internal/mocks/service"
	"geofence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockPushSubscriptionRepository,
	*mockSvc.MockPushSender,
	*mockSvc.MockMetricsRecorder,
) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewDispatchService(subscriptionRepo, sender, metrics, createTestConfig(), createTestLogger())

	return svc, subscriptionRepo, sender, metrics
}

func createTestSubscriptions(userID string, n int) []*entity.PushSubscription {
	subscriptions := make([]*entity.PushSubscription, 0, n)
	for i := range n {
		subscriptions = append(subscriptions, &entity.PushSubscription{
			ID:       uuid.New(),
			UserID:   userID,
			Platform: constants.PlatformWebPush,
			Endpoint: "https://push.example.com/sub/" + string(rune('a'+i)),
		})
	}

	return subscriptions
}

func createTestDispatchRequest(userID string) *usecase.DispatchRequest {
	return &usecase.DispatchRequest{
		NotificationID: uuid.New(),
		UserID:         userID,
		Payload:        &service.PushPayload{Title: "Pothole on Main St", Body: "You are 0 m away from Pothole on Main St"},
	}
}

func TestDispatchService_PartialFailure(t *testing.T) {
	svc, subscriptionRepo, sender, metrics := createTestDispatchService(t)
	ctx := context.Background()
	req := createTestDispatchRequest("user-1")
	subscriptions := createTestSubscriptions("user-1", 3)

	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return(subscriptions, nil)
	sender.EXPECT().Send(mock.Anything, subscriptions[0], req.Payload).Return(nil)
	sender.EXPECT().Send(mock.Anything, subscriptions[1], req.Payload).
		Return(domainerrors.NewDeliveryError(errors.New("503 from push service"), subscriptions[1].Endpoint, false))
	sender.EXPECT().Send(mock.Anything, subscriptions[2], req.Payload).Return(nil)
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeDelivered).Return().Times(2)
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeFailed).Return().Once()
	metrics.EXPECT().DispatchObserved(mock.Anything).Return()

	result, err := svc.Dispatch(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Delivered)
}

func TestDispatchService_ExpiredSubscription(t *testing.T) {
	svc, subscriptionRepo, sender, metrics := createTestDispatchService(t)
	ctx := context.Background()
	req := createTestDispatchRequest("user-1")
	subscriptions := createTestSubscriptions("user-1", 1)

	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return(subscriptions, nil)
	sender.EXPECT().Send(mock.Anything, subscriptions[0], req.Payload).
		Return(domainerrors.NewDeliveryError(errors.New("410 gone"), subscriptions[0].Endpoint, true))
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeExpired).Return().Once()
	metrics.EXPECT().DispatchObserved(mock.Anything).Return()

	result, err := svc.Dispatch(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, &usecase.DispatchResult{Attempted: 1, Delivered: 0}, result)
}

func TestDispatchService_NoSubscriptions(t *testing.T) {
	svc, subscriptionRepo, _, _ := createTestDispatchService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return([]*entity.PushSubscription{}, nil)

	result, err := svc.Dispatch(ctx, createTestDispatchRequest("user-1"))
	require.NoError(t, err)

	assert.Equal(t, &usecase.DispatchResult{}, result)
}

func TestDispatchService_NoSender(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	svc := NewDispatchService(subscriptionRepo, nil, metrics, createTestConfig(), createTestLogger())

	result, err := svc.Dispatch(context.Background(), createTestDispatchRequest("user-1"))
	require.NoError(t, err)

	assert.Equal(t, &usecase.DispatchResult{}, result)
}

func TestDispatchService_SubscriptionLookupError(t *testing.T) {
	svc, subscriptionRepo, _, _ := createTestDispatchService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, dbErr)

	_, err := svc.Dispatch(ctx, createTestDispatchRequest("user-1"))
	assert.ErrorIs(t, err, dbErr)
}

func TestDispatchService_InvalidRequest(t *testing.T) {
	svc, _, _, _ := createTestDispatchService(t)

	_, err := svc.Dispatch(context.Background(), &usecase.DispatchRequest{UserID: "user-1"})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestDispatchService_BoundedConcurrency(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	cfg := createTestConfig()
	cfg.Push.MaxConcurrency = 2
	svc := NewDispatchService(subscriptionRepo, sender, metrics, cfg, createTestLogger())

	ctx := context.Background()
	subscriptions := createTestSubscriptions("user-1", 6)

	var inFlight, peak atomic.Int32
	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return(subscriptions, nil)
	sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.PushSubscription, *service.PushPayload) error {
			n := inFlight.Add(1)
			for {
				current := peak.Load()
				if n <= current || peak.CompareAndSwap(current, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		})
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeDelivered).Return()
	metrics.EXPECT().DispatchObserved(mock.Anything).Return()

	result, err := svc.Dispatch(ctx, createTestDispatchRequest("user-1"))
	require.NoError(t, err)

	assert.Equal(t, 6, result.Delivered)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestDispatchService_DeliveryTimeout(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	cfg := createTestConfig()
	cfg.Push.DeliveryTimeout = 20 * time.Millisecond
	svc := NewDispatchService(subscriptionRepo, sender, metrics, cfg, createTestLogger())

	ctx := context.Background()
	subscriptions := createTestSubscriptions("user-1", 2)

	subscriptionRepo.EXPECT().FindByUserID(ctx, "user-1").Return(subscriptions, nil)
	// the first endpoint hangs until its deadline, the second answers
	sender.EXPECT().Send(mock.Anything, subscriptions[0], mock.Anything).
		RunAndReturn(func(ctx context.Context, sub *entity.PushSubscription, _ *service.PushPayload) error {
			<-ctx.Done()

			return domainerrors.NewDeliveryError(ctx.Err(), sub.Endpoint, false)
		})
	sender.EXPECT().Send(mock.Anything, subscriptions[1], mock.Anything).Return(nil)
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeFailed).Return().Once()
	metrics.EXPECT().DeliveryObserved(service.DeliveryOutcomeDelivered).Return().Once()
	metrics.EXPECT().DispatchObserved(mock.Anything).Return()

	start := time.Now()
	result, err := svc.Dispatch(ctx, createTestDispatchRequest("user-1"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Delivered)
	assert.Less(t, time.Since(start), time.Second)
}
