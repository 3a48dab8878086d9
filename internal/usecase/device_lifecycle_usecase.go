package usecase

import (
	"context"

	"monitoring/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRecord is the transport representation of a device used between
// message decoding and persistence.
type DeviceRecord struct {
	ID                   uuid.UUID `json:"id"`
	OwnerID              uuid.UUID `json:"ownerId"`
	MaxHourlyConsumption float64   `json:"maxHourlyConsumption"`
}

// DeviceCommand is one inbound device lifecycle message together with its declared intent.
type DeviceCommand struct {
	Intent  entity.Intent
	Payload string
}

// DeviceCommandResult is the outcome of a handled DeviceCommand.
// Record is nil for delete commands.
type DeviceCommandResult struct {
	Intent entity.Intent
	Record *DeviceRecord
}

// DeviceLifecycleUsecase processes device lifecycle messages against the device catalog.
// Implementations hold no state between calls and are safe for concurrent use.
type DeviceLifecycleUsecase interface {
	// Handle dispatches a command to Register, Update or Delete based on its intent.
	Handle(ctx context.Context, cmd DeviceCommand) (*DeviceCommandResult, error)

	// Register decodes a device message and upserts the device.
	Register(ctx context.Context, message string) (*DeviceRecord, error)

	// Update decodes a device message and upserts the device. It shares the register pipeline.
	Update(ctx context.Context, message string) (*DeviceRecord, error)

	// Delete decodes the device ID of a message and removes the device.
	Delete(ctx context.Context, message string) error

	// ListForOwner returns every device owned by ownerID.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*DeviceRecord, error)
}
