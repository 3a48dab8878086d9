// Package messaging connects the device lifecycle processor to message transports:
// Google Cloud Pub/Sub, NATS JetStream, MQTT and a local HTTP push emulation.
package messaging

import (
	"context"

	"monitoring/internal/domain/entity"
)

// Message is a transport-neutral inbound message.
type Message struct {
	ID         string
	Intent     entity.Intent
	Data       []byte
	Attributes map[string]string
	Source     string
}

// Handler processes one message. Returning nil acknowledges it;
// returning an error asks the transport to deliver it again.
type Handler func(ctx context.Context, msg *Message) error

// Subscriber pulls messages from a transport.
type Subscriber interface {
	// Receive blocks, calling handler for each message, until ctx is done or the transport fails.
	Receive(ctx context.Context, handler Handler) error

	// Close releases transport resources
	Close() error
}

// Source names used in logs and metrics.
const (
	SourceGoogle = "google"
	SourceNATS   = "nats"
	SourceMQTT   = "mqtt"
	SourcePush   = "push"
)

// intentSource pairs an intent with its subscription, subject or topic name.
type intentSource struct {
	intent entity.Intent
	name   string
}

// intentSources lists the configured sources in intent order.
func intentSources(byIntent map[string]string) []intentSource {
	sources := make([]intentSource, 0, len(byIntent))
	for _, intent := range entity.Intents() {
		if name, ok := byIntent[intent.String()]; ok {
			sources = append(sources, intentSource{intent: intent, name: name})
		}
	}

	return sources
}
