package pubsub

import (
	"context"
	"log/slog"

	"geofence/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// cloudTopicPublisher sends dispatch events to a Cloud Pub/Sub topic, ordered per user
type cloudTopicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	name   string
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", name)
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	return &cloudTopicPublisher{
		client: client,
		topic:  topic,
		name:   name,
		logger: logger,
	}, nil
}

func (p *cloudTopicPublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UserID,
	}).Get(ctx)
	if err != nil {
		// a failed publish pauses its ordering key
		p.topic.ResumePublish(event.UserID)

		return errors.Wrapf(err, "failed to publish notification %s", event.NotificationID)
	}

	p.logger.Debug("Dispatch event published",
		slog.String("topic", p.name),
		slog.String("notification_id", event.NotificationID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *cloudTopicPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
