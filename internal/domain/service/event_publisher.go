package service

import (
	"context"

	"monitoring/internal/domain/entity"
)

// DeviceEvent is a device lifecycle message as it travels over a transport.
type DeviceEvent struct {
	RequestID string        // For distributed tracing
	Intent    entity.Intent // Selects the subscription, subject or topic
	Payload   string        // Raw device message text
}

// EventPublisher defines the interface for publishing device lifecycle messages
type EventPublisher interface {
	// Publish sends one event and waits until the transport accepted it
	Publish(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
