package messaging

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"monitoring/config"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

const (
	defaultMQTTConnectTimeout = 10 * time.Second
	defaultMQTTClientID       = "monitoring"
	maxMQTTQoS                = 2
)

// mqttSubscriber subscribes to one topic per intent. MQTT has no negative acknowledgement,
// so a message that should be retried is left unacknowledged and redelivered by the broker
// on the next session.
type mqttSubscriber struct {
	cfg     config.MQTTConfig
	sources []intentSource
	logger  *slog.Logger

	mu     sync.Mutex
	client pahomqtt.Client
}

// NewMQTTSubscriber validates the configuration; the connection is opened by Receive
func NewMQTTSubscriber(cfg *config.MQTTConfig, topics config.SubscriptionsConfig, logger *slog.Logger) (Subscriber, error) {
	if cfg == nil || cfg.Broker == "" {
		return nil, errors.New("broker is required for mqtt provider")
	}
	if cfg.QoS < 0 || cfg.QoS > maxMQTTQoS {
		return nil, errors.Errorf("invalid mqtt qos %d", cfg.QoS)
	}

	sources := intentSources(topics.ByIntent())
	if len(sources) == 0 {
		return nil, errors.New("at least one topic is required for mqtt provider")
	}

	return &mqttSubscriber{
		cfg:     *cfg,
		sources: sources,
		logger:  logger,
	}, nil
}

// newMQTTClientOptions builds the options shared by subscriber and publisher
func newMQTTClientOptions(cfg config.MQTTConfig, clientIDSuffix string) *pahomqtt.ClientOptions {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = defaultMQTTClientID
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID + clientIDSuffix).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	return opts
}

var newMQTTClient = pahomqtt.NewClient

// connectMQTT opens a client connection. With connect retry enabled the client keeps
// trying in the background, so a failed attempt is disconnected before returning.
func connectMQTT(opts *pahomqtt.ClientOptions, timeout time.Duration) (pahomqtt.Client, error) {
	if timeout <= 0 {
		timeout = defaultMQTTConnectTimeout
	}

	client := newMQTTClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)

		return nil, errors.Errorf("mqtt connect timeout after %v", timeout)
	}
	if err := token.Error(); err != nil {
		client.Disconnect(0)

		return nil, errors.Wrap(err, "failed to connect to MQTT broker")
	}

	return client, nil
}

// Receive connects, subscribes on every (re)connect and blocks until ctx is done
func (s *mqttSubscriber) Receive(ctx context.Context, handler Handler) error {
	qos := byte(s.cfg.QoS)

	opts := newMQTTClientOptions(s.cfg, "").
		SetCleanSession(false).
		SetAutoAckDisabled(true)

	opts.SetOnConnectHandler(func(client pahomqtt.Client) {
		for _, source := range s.sources {
			token := client.Subscribe(source.name, qos, func(_ pahomqtt.Client, m pahomqtt.Message) {
				s.handle(ctx, source, m, handler)
			})
			if token.Wait() && token.Error() != nil {
				s.logger.Error("[MQTT] Subscribe failed",
					slog.String("topic", source.name),
					slog.Any("error", token.Error()),
				)

				continue
			}

			s.logger.Info("[MQTT] Subscribed",
				slog.String("topic", source.name),
				slog.String("intent", source.intent.String()),
			)
		}
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		s.logger.Warn("[MQTT] Connection lost", slog.Any("error", err))
	})

	client, err := connectMQTT(opts, s.cfg.ConnectTimeout)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	<-ctx.Done()

	return nil
}

func (s *mqttSubscriber) handle(ctx context.Context, source intentSource, m pahomqtt.Message, handler Handler) {
	msg := &Message{
		ID:     strconv.Itoa(int(m.MessageID())),
		Intent: source.intent,
		Data:   m.Payload(),
		Source: SourceMQTT,
	}

	if err := handler(ctx, msg); err != nil {
		s.logger.Warn("[MQTT] Message left unacknowledged for redelivery",
			slog.String("topic", m.Topic()),
			slog.Any("error", err),
		)

		return
	}

	m.Ack()
}

// Close disconnects from the broker
func (s *mqttSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}

	return nil
}
