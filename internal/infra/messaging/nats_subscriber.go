package messaging

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"monitoring/config"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
)

const (
	defaultNATSStream     = "DEVICES"
	defaultNATSDurable    = "monitoring"
	defaultNATSAckWait    = 30 * time.Second
	defaultNATSMaxDeliver = 5
)

// natsSubscriber consumes one durable JetStream consumer per intent subject
type natsSubscriber struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	sources []intentSource
	cfg     config.NATSConfig
	logger  *slog.Logger
}

// NewNATSSubscriber connects to NATS and prepares JetStream consumers for the configured subjects
func NewNATSSubscriber(cfg *config.NATSConfig, subjects config.SubscriptionsConfig, logger *slog.Logger) (Subscriber, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("url is required for nats provider")
	}

	sources := intentSources(subjects.ByIntent())
	if len(sources) == 0 {
		return nil, errors.New("at least one subject is required for nats provider")
	}

	conn, js, err := connectJetStream(cfg.URL, "monitoring-subscriber")
	if err != nil {
		return nil, err
	}

	logger.Info("NATS subscriber initialized",
		slog.String("url", cfg.URL),
		slog.Int("subjects", len(sources)),
	)

	return &natsSubscriber{
		conn:    conn,
		js:      js,
		sources: sources,
		cfg:     withNATSDefaults(*cfg),
		logger:  logger,
	}, nil
}

func connectJetStream(url, name string) (*nats.Conn, jetstream.JetStream, error) {
	conn, err := nats.Connect(url, nats.Name(name), nats.MaxReconnects(-1))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to NATS")
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, nil, errors.Wrap(err, "failed to create JetStream context")
	}

	return conn, js, nil
}

func withNATSDefaults(cfg config.NATSConfig) config.NATSConfig {
	if cfg.Stream == "" {
		cfg.Stream = defaultNATSStream
	}
	if cfg.Durable == "" {
		cfg.Durable = defaultNATSDurable
	}
	if cfg.AckWait <= 0 {
		cfg.AckWait = defaultNATSAckWait
	}
	if cfg.MaxDeliver == 0 {
		cfg.MaxDeliver = defaultNATSMaxDeliver
	}

	return cfg
}

// Receive ensures the stream exists, starts one consumer per subject and blocks until ctx is done
func (s *natsSubscriber) Receive(ctx context.Context, handler Handler) error {
	subjects := make([]string, 0, len(s.sources))
	for _, source := range s.sources {
		subjects = append(subjects, source.name)
	}

	stream, err := s.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     s.cfg.Stream,
		Subjects: subjects,
	})
	if err != nil {
		return errors.Wrapf(err, "create stream %s", s.cfg.Stream)
	}

	consumeContexts := make([]jetstream.ConsumeContext, 0, len(s.sources))
	defer func() {
		for _, cc := range consumeContexts {
			cc.Stop()
		}
	}()

	for _, source := range s.sources {
		consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
			Durable:       s.cfg.Durable + "-" + source.intent.String(),
			FilterSubject: source.name,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       s.cfg.AckWait,
			MaxDeliver:    s.cfg.MaxDeliver,
		})
		if err != nil {
			return errors.Wrapf(err, "create consumer for %s", source.name)
		}

		cc, err := consumer.Consume(func(m jetstream.Msg) {
			s.handle(ctx, source, m, handler)
		})
		if err != nil {
			return errors.Wrapf(err, "consume %s", source.name)
		}
		consumeContexts = append(consumeContexts, cc)

		s.logger.Info("[NATS] Consuming",
			slog.String("subject", source.name),
			slog.String("intent", source.intent.String()),
		)
	}

	<-ctx.Done()

	return nil
}

func (s *natsSubscriber) handle(ctx context.Context, source intentSource, m jetstream.Msg, handler Handler) {
	msg := &Message{
		Intent:     source.intent,
		Data:       m.Data(),
		Attributes: headerAttributes(m.Headers()),
		Source:     SourceNATS,
	}
	if meta, err := m.Metadata(); err == nil {
		msg.ID = meta.Stream + ":" + strconv.FormatUint(meta.Sequence.Stream, 10)
	}

	if err := handler(ctx, msg); err != nil {
		if nakErr := m.Nak(); nakErr != nil {
			s.logger.Warn("[NATS] Failed to NAK message", slog.Any("error", nakErr))
		}

		return
	}

	if err := m.Ack(); err != nil {
		s.logger.Warn("[NATS] Failed to ACK message", slog.Any("error", err))
	}
}

// Close drains the connection
func (s *natsSubscriber) Close() error {
	return errors.WithStack(s.conn.Drain())
}

// headerAttributes flattens NATS headers into single-valued attributes
func headerAttributes(header nats.Header) map[string]string {
	if len(header) == 0 {
		return nil
	}

	attributes := make(map[string]string, len(header))
	for key := range header {
		attributes[key] = header.Get(key)
	}

	return attributes
}
