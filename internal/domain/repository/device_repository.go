// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"monitoring/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device catalog persistence.
// Implementations must make Save and DeleteByID atomic per device ID.
type DeviceRepository interface {
	// Save inserts the device or fully replaces the stored device with the same ID.
	// It returns the persisted state.
	Save(ctx context.Context, device *entity.Device) (*entity.Device, error)

	// DeleteByID permanently removes a device. Deleting an unknown ID is a no-op.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// FindAllByOwner returns a snapshot of every device owned by ownerID.
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)
}
