package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"monitoring/config"
	"monitoring/internal/domain/constants"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using one Pub/Sub topic per intent
type googlePubSubPublisher struct {
	client     *pubsub.Client
	publishers map[entity.Intent]*pubsub.Publisher
	logger     *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.GooglePubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishers := make(map[entity.Intent]*pubsub.Publisher)
	for _, source := range intentSources(cfg.Topics.ByIntent()) {
		// Check if topic exists using TopicAdminClient
		topicPath := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, source.name)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", source.name)
		}

		publishers[source.intent] = client.Publisher(source.name)
	}

	if len(publishers) == 0 {
		client.Close()

		return nil, errors.New("at least one topic is required for google provider")
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Int("topics", len(publishers)),
	)

	return &googlePubSubPublisher{
		client:     client,
		publishers: publishers,
		logger:     logger,
	}, nil
}

// Publish publishes the raw device message to the topic of its intent
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.DeviceEvent) error {
	publisher, ok := p.publishers[event.Intent]
	if !ok {
		return errors.Errorf("no topic configured for intent %q", event.Intent)
	}

	msg := &pubsub.Message{
		Data:       []byte(event.Payload),
		Attributes: eventAttributes(event),
	}

	serverID, err := publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published",
		slog.String("intent", event.Intent.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	for _, publisher := range p.publishers {
		publisher.Stop()
	}

	return errors.WithStack(p.client.Close())
}

// eventAttributes builds the attributes shared by every transport that supports them
func eventAttributes(event *service.DeviceEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeIntent: event.Intent.String(),
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
