package messaging

import (
	"context"
	"log/slog"

	"monitoring/config"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// googleSubscriber receives from one Pub/Sub subscription per intent
type googleSubscriber struct {
	client  *pubsub.Client
	sources []intentSource
	cfg     *config.GooglePubSubConfig
	logger  *slog.Logger
}

// NewGoogleSubscriber creates a Pub/Sub subscriber for the configured intent subscriptions
func NewGoogleSubscriber(ctx context.Context, cfg *config.GooglePubSubConfig, subscriptions config.SubscriptionsConfig, logger *slog.Logger) (Subscriber, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	sources := intentSources(subscriptions.ByIntent())
	if len(sources) == 0 {
		return nil, errors.New("at least one subscription is required for google provider")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Info("Google Pub/Sub subscriber initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Int("subscriptions", len(sources)),
	)

	return &googleSubscriber{
		client:  client,
		sources: sources,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Receive runs one streaming pull per subscription until ctx is done
func (s *googleSubscriber) Receive(ctx context.Context, handler Handler) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, source := range s.sources {
		sub := s.client.Subscriber(source.name)
		if s.cfg.MaxOutstandingMessages > 0 {
			sub.ReceiveSettings.MaxOutstandingMessages = s.cfg.MaxOutstandingMessages
		}
		if s.cfg.NumGoroutines > 0 {
			sub.ReceiveSettings.NumGoroutines = s.cfg.NumGoroutines
		}

		group.Go(func() error {
			s.logger.Info("[GooglePubSub] Receiving",
				slog.String("subscription", source.name),
				slog.String("intent", source.intent.String()),
			)

			err := sub.Receive(groupCtx, func(msgCtx context.Context, m *pubsub.Message) {
				msg := &Message{
					ID:         m.ID,
					Intent:     source.intent,
					Data:       m.Data,
					Attributes: m.Attributes,
					Source:     SourceGoogle,
				}

				if err := handler(msgCtx, msg); err != nil {
					m.Nack()

					return
				}
				m.Ack()
			})

			return errors.Wrapf(err, "receive from %s", source.name)
		})
	}

	return group.Wait()
}

// Close releases Pub/Sub client resources
func (s *googleSubscriber) Close() error {
	return errors.WithStack(s.client.Close())
}
