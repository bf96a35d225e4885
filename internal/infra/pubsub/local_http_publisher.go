package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"geofence/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	localPushSubscription = "projects/local/subscriptions/geofence-dispatches"
)

// pushEnvelope is the body Cloud Pub/Sub POSTs to push subscribers
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// pushEndpointPublisher delivers events straight to a push subscriber, for local runs
type pushEndpointPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts each event to endpoint in push-subscription format
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushEndpointPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *pushEndpointPublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: localPushSubscription,
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.NotificationID,
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.Debug("Dispatch event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", event.NotificationID),
		slog.Int("delivered", event.Delivered),
	)

	return nil
}

func (p *pushEndpointPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
