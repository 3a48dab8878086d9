package messaging

import (
	"context"
	"log/slog"

	"monitoring/config"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
)

// natsPublisher implements EventPublisher by publishing to the JetStream subject of each intent
type natsPublisher struct {
	conn     *nats.Conn
	js       jetstream.JetStream
	subjects map[entity.Intent]string
	logger   *slog.Logger
}

// NewNATSPublisher creates a JetStream publisher for the configured subjects
func NewNATSPublisher(cfg *config.NATSConfig, subjects config.SubscriptionsConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("url is required for nats provider")
	}

	bySubject := make(map[entity.Intent]string)
	for _, source := range intentSources(subjects.ByIntent()) {
		bySubject[source.intent] = source.name
	}

	conn, js, err := connectJetStream(cfg.URL, "monitoring-publisher")
	if err != nil {
		return nil, err
	}

	return &natsPublisher{
		conn:     conn,
		js:       js,
		subjects: bySubject,
		logger:   logger,
	}, nil
}

// Publish waits for the JetStream publish acknowledgement
func (p *natsPublisher) Publish(ctx context.Context, event *service.DeviceEvent) error {
	subject, ok := p.subjects[event.Intent]
	if !ok {
		return errors.Errorf("no subject configured for intent %q", event.Intent)
	}

	msg := nats.NewMsg(subject)
	msg.Data = []byte(event.Payload)
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}

	ack, err := p.js.PublishMsg(ctx, msg)
	if err != nil {
		return errors.Wrapf(err, "publish to %s", subject)
	}

	p.logger.Info("[NATS] Event published",
		slog.String("subject", subject),
		slog.String("stream", ack.Stream),
		slog.Uint64("sequence", ack.Sequence),
	)

	return nil
}

// Close drains the connection
func (p *natsPublisher) Close() error {
	return errors.WithStack(p.conn.Drain())
}
