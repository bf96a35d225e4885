package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"geofence/config"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultWebPushTTL = 3600

type webPushSender struct {
	client  webpush.HTTPClient
	options webpush.Options
	logger  *slog.Logger
}

// NewWebPushSender creates a Web Push sender signed with the configured VAPID keys
func NewWebPushSender(cfg *config.VAPIDConfig, client webpush.HTTPClient, logger *slog.Logger) (service.PushSender, error) {
	if cfg == nil || cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, errors.New("vapid keys are required for web push")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultWebPushTTL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &webPushSender{
		client: client,
		options: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.PublicKey,
			VAPIDPrivateKey: cfg.PrivateKey,
			TTL:             ttl,
			Urgency:         webpush.UrgencyHigh,
		},
		logger: logger,
	}, nil
}

// Send encrypts the payload for the subscription and posts it to the push service
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return domainerrors.NewDeliveryError(errors.Wrap(err, "failed to marshal payload"), subscription.Endpoint, false)
	}

	options := s.options
	options.HTTPClient = s.client

	resp, err := webpush.SendNotificationWithContext(ctx, message, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, &options)
	if err != nil {
		return domainerrors.NewDeliveryError(errors.Wrap(err, "failed to send web push"), subscription.Endpoint, false)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		s.logger.Debug("Web push subscription expired",
			slog.String("subscription_id", subscription.ID.String()),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.NewDeliveryError(errors.Errorf("push service returned %d", resp.StatusCode), subscription.Endpoint, true)
	default:
		return domainerrors.NewDeliveryError(errors.Errorf("push service returned %d", resp.StatusCode), subscription.Endpoint, false)
	}
}
