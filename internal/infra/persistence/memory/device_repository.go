// Package memory contains in-process implementations of the persistence ports.
// They are used for local development and tests; state is lost on restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]*entity.Device
	order   []uuid.UUID
	now     func() time.Time
}

// NewDeviceRepository creates an empty in-memory device repository.
func NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{
		devices: make(map[uuid.UUID]*entity.Device),
		now:     time.Now,
	}
}

// Save inserts or fully replaces the device with the same ID.
func (repo *deviceRepository) Save(_ context.Context, device *entity.Device) (*entity.Device, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	stored := *device
	stored.UpdatedAt = now

	if existing, ok := repo.devices[device.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
		repo.order = append(repo.order, device.ID)
	}
	repo.devices[device.ID] = &stored

	saved := stored

	return &saved, nil
}

// DeleteByID removes the device; unknown IDs are ignored.
func (repo *deviceRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.devices[id]; !ok {
		return nil
	}

	delete(repo.devices, id)
	repo.order = slices.DeleteFunc(repo.order, func(candidate uuid.UUID) bool {
		return candidate == id
	})

	return nil
}

// FindAllByOwner returns copies of the owner's devices in insertion order.
func (repo *deviceRepository) FindAllByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	devices := make([]*entity.Device, 0)
	for _, id := range repo.order {
		device := repo.devices[id]
		if device.OwnerID != ownerID {
			continue
		}
		snapshot := *device
		devices = append(devices, &snapshot)
	}

	return devices, nil
}
