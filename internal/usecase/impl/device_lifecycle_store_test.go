package impl

import (
	"context"
	"fmt"
	"testing"

	"monitoring/internal/codec/devicemsg"
	"monitoring/internal/domain/entity"
	"monitoring/internal/domain/repository"
	"monitoring/internal/infra/persistence/memory"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the lifecycle service against the in-memory store and
// check the observable device set rather than individual repository calls.

func newStoreBackedService(t *testing.T) (usecase.DeviceLifecycleUsecase, repository.DeviceRepository) {
	t.Helper()

	repo := memory.NewDeviceRepository()
	service := NewDeviceLifecycleService(DeviceLifecycleServiceParams{
		DeviceRepo: repo,
		Decoder:    devicemsg.NewKeyedDecoder(),
		Logger:     newDiscardLogger(),
	})

	return service, repo
}

type deviceState struct {
	ID                   uuid.UUID
	OwnerID              uuid.UUID
	MaxHourlyConsumption float64
}

func snapshotOwner(t *testing.T, repo repository.DeviceRepository, ownerID uuid.UUID) []deviceState {
	t.Helper()

	devices, err := repo.FindAllByOwner(context.Background(), ownerID)
	require.NoError(t, err)

	states := make([]deviceState, 0, len(devices))
	for _, device := range devices {
		states = append(states, deviceState{
			ID:                   device.ID,
			OwnerID:              device.OwnerID,
			MaxHourlyConsumption: device.MaxHourlyConsumption,
		})
	}

	return states
}

func TestDeviceLifecycle_ExampleRegister(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"))
	require.NoError(t, err)

	ownerID := uuid.MustParse(exampleOwnerID)
	assert.Equal(t, []deviceState{{
		ID:                   uuid.MustParse(exampleDeviceID),
		OwnerID:              ownerID,
		MaxHourlyConsumption: 5,
	}}, snapshotOwner(t, repo, ownerID))
}

func TestDeviceLifecycle_RegisterRoundTrip(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()

	for _, value := range []float64{0, 0.5, 12.75, 1000} {
		deviceID := uuid.New()
		ownerID := uuid.New()

		_, err := service.Register(ctx, deviceMessage(entity.IntentRegister, deviceID.String(), ownerID.String(), fmt.Sprint(value)))
		require.NoError(t, err)

		assert.Equal(t, []deviceState{{ID: deviceID, OwnerID: ownerID, MaxHourlyConsumption: value}}, snapshotOwner(t, repo, ownerID))
	}
}

func TestDeviceLifecycle_RegisterIsIdempotent(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()
	ownerID := uuid.MustParse(exampleOwnerID)
	message := deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5")

	_, err := service.Register(ctx, message)
	require.NoError(t, err)
	once := snapshotOwner(t, repo, ownerID)

	_, err = service.Register(ctx, message)
	require.NoError(t, err)

	assert.Equal(t, once, snapshotOwner(t, repo, ownerID))
}

func TestDeviceLifecycle_UpdateActsAsUpsert(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()
	deviceID := uuid.New()
	ownerID := uuid.New()

	// Update for an unknown device creates it.
	_, err := service.Update(ctx, deviceMessage(entity.IntentUpdate, deviceID.String(), ownerID.String(), "3"))
	require.NoError(t, err)
	assert.Equal(t, []deviceState{{ID: deviceID, OwnerID: ownerID, MaxHourlyConsumption: 3}}, snapshotOwner(t, repo, ownerID))

	// A later update fully replaces the stored fields, owner included.
	newOwnerID := uuid.New()
	_, err = service.Update(ctx, deviceMessage(entity.IntentUpdate, deviceID.String(), newOwnerID.String(), "4.5"))
	require.NoError(t, err)
	assert.Empty(t, snapshotOwner(t, repo, ownerID))
	assert.Equal(t, []deviceState{{ID: deviceID, OwnerID: newOwnerID, MaxHourlyConsumption: 4.5}}, snapshotOwner(t, repo, newOwnerID))
}

func TestDeviceLifecycle_RegisterThenUpdateEqualsUpdateAlone(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()
	ownerID := uuid.New()

	sequenced, sequencedRepo := newStoreBackedService(t)
	_, err := sequenced.Register(ctx, deviceMessage(entity.IntentRegister, deviceID.String(), ownerID.String(), "1"))
	require.NoError(t, err)
	_, err = sequenced.Update(ctx, deviceMessage(entity.IntentUpdate, deviceID.String(), ownerID.String(), "2"))
	require.NoError(t, err)

	direct, directRepo := newStoreBackedService(t)
	_, err = direct.Update(ctx, deviceMessage(entity.IntentUpdate, deviceID.String(), ownerID.String(), "2"))
	require.NoError(t, err)

	assert.Equal(t, snapshotOwner(t, directRepo, ownerID), snapshotOwner(t, sequencedRepo, ownerID))
}

func TestDeviceLifecycle_DeleteRemovesAndIsIdempotent(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()
	ownerID := uuid.MustParse(exampleOwnerID)
	message := deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5")

	_, err := service.Register(ctx, message)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, message))
	assert.Empty(t, snapshotOwner(t, repo, ownerID))

	require.NoError(t, service.Delete(ctx, message))
	assert.Empty(t, snapshotOwner(t, repo, ownerID))
}

func TestDeviceLifecycle_MalformedLeavesStoreUnchanged(t *testing.T) {
	service, repo := newStoreBackedService(t)
	ctx := context.Background()
	ownerID := uuid.MustParse(exampleOwnerID)

	_, err := service.Register(ctx, deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"))
	require.NoError(t, err)
	before := snapshotOwner(t, repo, ownerID)

	malformed := []string{
		"",
		`{"type":"register"}`,
		deviceMessage(entity.IntentUpdate, exampleDeviceID, exampleOwnerID, "NaN"),
		deviceMessage(entity.IntentUpdate, exampleDeviceID, exampleOwnerID, "-1"),
		deviceMessage(entity.IntentUpdate, "device-1", exampleOwnerID, "7"),
		deviceMessage(entity.IntentUpdate, exampleDeviceID, "nobody", "7"),
	}

	for _, message := range malformed {
		_, err := service.Update(ctx, message)
		assert.Error(t, err, message)
	}
	assert.Error(t, service.Delete(ctx, `{"type":"delete","id":"device-1"}`))

	assert.Equal(t, before, snapshotOwner(t, repo, ownerID))
}

func TestDeviceLifecycle_OwnerListingKeepsInsertionOrder(t *testing.T) {
	service, _ := newStoreBackedService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		_, err := service.Register(ctx, deviceMessage(entity.IntentRegister, id.String(), ownerID.String(), fmt.Sprint(i)))
		require.NoError(t, err)
	}

	records, err := service.ListForOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, records, len(ids))
	for i, record := range records {
		assert.Equal(t, ids[i], record.ID)
	}
}
