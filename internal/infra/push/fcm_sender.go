package push

import (
	"context"
	"log/slog"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmClient is the part of messaging.Client the sender needs
type fcmClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmSender struct {
	client fcmClient
	logger *slog.Logger
}

// NewFCMSender creates a Firebase Cloud Messaging sender
func NewFCMSender(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.PushSender, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMSender(client, logger), nil
}

func newFCMSender(client fcmClient, logger *slog.Logger) *fcmSender {
	return &fcmSender{client: client, logger: logger}
}

// Send delivers the payload to a single registration token
func (s *fcmSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	data := make(map[string]string, len(payload.Data)+1)
	for k, v := range payload.Data {
		data[k] = v
	}
	if payload.URL != "" {
		data["url"] = payload.URL
	}

	message := &messaging.Message{
		Token: subscription.Endpoint,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		// Check if error is due to invalid or unregistered token
		expired := messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
		if expired {
			s.logger.Debug("FCM token no longer valid", slog.String("subscription_id", subscription.ID.String()))
		}

		return domainerrors.NewDeliveryError(errors.Wrap(err, "failed to send notification"), subscription.Endpoint, expired)
	}

	return nil
}
