package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"monitoring/config"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/service"
	"monitoring/internal/infra/messaging"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type publishInput struct {
	intent    string
	id        string
	owner     string
	max       string
	raw       string
	requestID string
}

// deviceMessage is the keyed form of a lifecycle message; field order matches the positional form.
type deviceMessage struct {
	Type                 string `json:"type"`
	ID                   string `json:"id"`
	OwnerID              string `json:"ownerId,omitempty"`
	MaxHourlyConsumption string `json:"maxHourlyConsumption,omitempty"`
}

func buildEvent(input publishInput) (*service.DeviceEvent, error) {
	intent := entity.Intent(input.intent)
	if !intent.IsValid() {
		return nil, errors.Errorf("unknown intent %q", input.intent)
	}

	requestID := input.requestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	payload := input.raw
	if payload == "" {
		if input.id == "" {
			return nil, errors.New("--id is required unless --raw is set")
		}

		message := deviceMessage{Type: intent.String(), ID: input.id}
		if intent.IsUpsert() {
			message.OwnerID = input.owner
			message.MaxHourlyConsumption = input.max
		}

		encoded, err := json.Marshal(message)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode device message")
		}
		payload = string(encoded)
	}

	return &service.DeviceEvent{
		RequestID: requestID,
		Intent:    intent,
		Payload:   payload,
	}, nil
}

func runPublish(ctx context.Context, cfg *config.Config, logger *slog.Logger, input publishInput) error {
	event, err := buildEvent(input)
	if err != nil {
		return err
	}

	publisher, err := messaging.NewEventPublisher(ctx, cfg.Messaging, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Warn("Failed to close publisher", slog.Any("error", closeErr))
		}
	}()

	if err := publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish device event")
	}

	logger.Info("Device event published",
		slog.String("intent", event.Intent.String()),
		slog.String("request_id", event.RequestID),
	)

	return nil
}
