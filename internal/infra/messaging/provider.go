package messaging

import (
	"context"
	"log/slog"

	"monitoring/config"
	"monitoring/internal/domain/constants"
	"monitoring/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriberParams holds dependencies for Subscriber, injected by Fx
type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSubscriber creates the pull Subscriber for the configured provider.
// The local provider, or no messaging config at all, yields a nil Subscriber:
// messages then arrive only through the HTTP push endpoint.
func NewSubscriber(params SubscriberParams) (Subscriber, error) {
	cfg := params.Config.Messaging
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MessagingProviderLocal {
		logger.Info("No pull subscriber configured, relying on the push endpoint")

		return nil, nil
	}

	var (
		subscriber Subscriber
		err        error
	)

	switch cfg.Provider {
	case constants.MessagingProviderGoogle:
		subscriber, err = NewGoogleSubscriber(params.Ctx, cfg.Google, cfg.Subscriptions, logger)
	case constants.MessagingProviderNATS:
		subscriber, err = NewNATSSubscriber(cfg.NATS, cfg.Subscriptions, logger)
	case constants.MessagingProviderMQTT:
		subscriber, err = NewMQTTSubscriber(cfg.MQTT, cfg.Subscriptions, logger)
	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing message subscriber")

			return subscriber.Close()
		},
	})

	return subscriber, nil
}

// NewEventPublisher creates an EventPublisher for the configured provider
func NewEventPublisher(ctx context.Context, cfg *config.MessagingConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("messaging provider is not configured")
	}

	switch cfg.Provider {
	case constants.MessagingProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.MessagingProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.Google, logger)

	case constants.MessagingProviderNATS:
		return NewNATSPublisher(cfg.NATS, cfg.Subscriptions, logger)

	case constants.MessagingProviderMQTT:
		return NewMQTTPublisher(cfg.MQTT, cfg.Subscriptions, logger)

	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}
}

// Module provides the messaging FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSubscriber),
)
