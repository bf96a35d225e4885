// Package push delivers proximity alerts to Web Push and FCM endpoints.
package push

import (
	"context"
	"log/slog"
	"net/http"

	"geofence/config"
	"geofence/internal/domain/constants"
	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// multiSender routes each subscription to the sender registered for its platform
type multiSender struct {
	senders map[string]service.PushSender
}

// NewMultiSender builds a platform router. Platforms without a sender fail per delivery.
func NewMultiSender(senders map[string]service.PushSender) service.PushSender {
	return &multiSender{senders: senders}
}

func (m *multiSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	sender, ok := m.senders[subscription.Platform]
	if !ok {
		return domainerrors.NewDeliveryError(
			errors.Errorf("no sender for platform %q", subscription.Platform),
			subscription.Endpoint,
			false,
		)
	}

	return sender.Send(ctx, subscription, payload)
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSender wires the configured platforms. It returns nil when none is configured,
// in which case dispatch records notifications without delivering them.
func NewSender(params SenderParams) (service.PushSender, error) {
	logger := params.Logger
	senders := make(map[string]service.PushSender)

	if vapid := params.Config.Push.VAPID; vapid != nil && vapid.PublicKey != "" && vapid.PrivateKey != "" {
		sender, err := NewWebPushSender(vapid, &http.Client{Timeout: params.Config.Push.DeliveryTimeout}, logger)
		if err != nil {
			return nil, err
		}
		senders[constants.PlatformWebPush] = sender
		logger.Info("Web push sender enabled")
	}

	if fb := params.Config.Firebase; fb != nil && (fb.ProjectID != "" || fb.CredentialsPath != "") {
		sender, err := NewFCMSender(params.Ctx, fb.ProjectID, fb.CredentialsPath, logger)
		if err != nil {
			return nil, err
		}
		senders[constants.PlatformFCM] = sender
		logger.Info("FCM sender enabled", slog.String("project_id", fb.ProjectID))
	}

	if len(senders) == 0 {
		logger.Warn("No push platform configured, notifications will be recorded but not delivered")

		return nil, nil
	}

	return NewMultiSender(senders), nil
}

// Module provides the push FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSender),
)
