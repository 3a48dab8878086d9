package messaging

import (
	"context"
	"log/slog"

	"monitoring/config"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/service"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// mqttPublisher implements EventPublisher by publishing the raw payload to the topic of each intent.
// MQTT 3.1.1 has no message properties, so the request ID is not carried.
type mqttPublisher struct {
	client pahomqtt.Client
	topics map[entity.Intent]string
	qos    byte
	logger *slog.Logger
}

// NewMQTTPublisher connects a publishing client
func NewMQTTPublisher(cfg *config.MQTTConfig, topics config.SubscriptionsConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Broker == "" {
		return nil, errors.New("broker is required for mqtt provider")
	}

	byTopic := make(map[entity.Intent]string)
	for _, source := range intentSources(topics.ByIntent()) {
		byTopic[source.intent] = source.name
	}

	client, err := connectMQTT(newMQTTClientOptions(*cfg, "-publisher"), cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	return &mqttPublisher{
		client: client,
		topics: byTopic,
		qos:    byte(cfg.QoS),
		logger: logger,
	}, nil
}

// Publish waits until the broker confirmed delivery for the configured QoS
func (p *mqttPublisher) Publish(ctx context.Context, event *service.DeviceEvent) error {
	topic, ok := p.topics[event.Intent]
	if !ok {
		return errors.Errorf("no topic configured for intent %q", event.Intent)
	}

	token := p.client.Publish(topic, p.qos, false, []byte(event.Payload))
	select {
	case <-token.Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "publish to %s", topic)
	}

	p.logger.Info("[MQTT] Event published", slog.String("topic", topic))

	return nil
}

// Close disconnects from the broker
func (p *mqttPublisher) Close() error {
	p.client.Disconnect(250)

	return nil
}
