package pubsub

import (
	"context"
	"log/slog"

	"geofence/internal/domain/service"

	"github.com/pkg/errors"
	cdkpubsub "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher publishes to any topic addressable by a Go CDK URL
type goCloudPublisher struct {
	topic  *cdkpubsub.Topic
	url    string
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at url, e.g. mem://dispatches
func NewGoCloudPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := cdkpubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	return &goCloudPublisher{
		topic:  topic,
		url:    url,
		logger: logger,
	}, nil
}

func (p *goCloudPublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &cdkpubsub.Message{
		Body:     body,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.Wrapf(err, "failed to send to %s", p.url)
	}

	p.logger.Debug("[GoCloudPubSub] Event published", slog.String("notification_id", event.NotificationID))

	return nil
}

func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
