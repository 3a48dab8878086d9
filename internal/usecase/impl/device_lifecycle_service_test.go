package impl

import (
	"context"
	"strings"
	"testing"

	"monitoring/internal/codec/devicemsg"
	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	mockRepo "monitoring/internal/mocks/repository"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	exampleDeviceID = "11111111-1111-1111-1111-111111111111"
	exampleOwnerID  = "22222222-2222-2222-2222-222222222222"
)

func deviceMessage(intent entity.Intent, id, ownerID, maxConsumption string) string {
	return `{"type":"` + intent.String() + `","id":"` + id + `","ownerId":"` + ownerID + `","maxHourlyConsumption":"` + maxConsumption + `"}`
}

// deviceLifecycleFixtures holds all test dependencies for device lifecycle service tests.
type deviceLifecycleFixtures struct {
	service    usecase.DeviceLifecycleUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceLifecycleService(t *testing.T) deviceLifecycleFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceLifecycleService(DeviceLifecycleServiceParams{
		DeviceRepo: deviceRepo,
		Decoder:    devicemsg.NewKeyedDecoder(),
		Logger:     newDiscardLogger(),
	})

	return deviceLifecycleFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceLifecycleService_Register_Success(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	deviceID := uuid.MustParse(exampleDeviceID)
	ownerID := uuid.MustParse(exampleOwnerID)

	fx.deviceRepo.EXPECT().
		Save(ctx, &entity.Device{ID: deviceID, OwnerID: ownerID, MaxHourlyConsumption: 5}).
		RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
			return device, nil
		})

	record, err := fx.service.Register(ctx, deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"))
	require.NoError(t, err)
	assert.Equal(t, deviceID, record.ID)
	assert.Equal(t, ownerID, record.OwnerID)
	assert.InDelta(t, 5.0, record.MaxHourlyConsumption, 1e-9)
}

func TestDeviceLifecycleService_Register_ReturnsPersistedState(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	persisted := &entity.Device{
		ID:                   uuid.MustParse(exampleDeviceID),
		OwnerID:              uuid.MustParse(exampleOwnerID),
		MaxHourlyConsumption: 5,
	}

	fx.deviceRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Device")).
		Return(persisted, nil)

	record, err := fx.service.Register(ctx, deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"))
	require.NoError(t, err)
	assert.Equal(t, &usecase.DeviceRecord{
		ID:                   persisted.ID,
		OwnerID:              persisted.OwnerID,
		MaxHourlyConsumption: persisted.MaxHourlyConsumption,
	}, record)
}

func TestDeviceLifecycleService_Register_LegacyVariants(t *testing.T) {
	messages := map[string]string{
		"tag without separator": `{register,"id":"` + exampleDeviceID + `","ownerId":"` + exampleOwnerID + `","maxHourlyConsumption":"5"}`,
		"trailing comma":        strings.TrimSuffix(deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"), "}") + ",}",
	}

	for name, message := range messages {
		t.Run(name, func(t *testing.T) {
			fx := createTestDeviceLifecycleService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().
				Save(ctx, &entity.Device{ID: uuid.MustParse(exampleDeviceID), OwnerID: uuid.MustParse(exampleOwnerID), MaxHourlyConsumption: 5}).
				RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
					return device, nil
				})

			record, err := fx.service.Register(ctx, message)
			require.NoError(t, err)
			assert.Equal(t, uuid.MustParse(exampleDeviceID), record.ID)
		})
	}
}

func TestDeviceLifecycleService_Update_UsesSameUpsert(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	newOwner := uuid.New()

	fx.deviceRepo.EXPECT().
		Save(ctx, &entity.Device{ID: uuid.MustParse(exampleDeviceID), OwnerID: newOwner, MaxHourlyConsumption: 8.5}).
		RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
			return device, nil
		})

	record, err := fx.service.Update(ctx, deviceMessage(entity.IntentUpdate, exampleDeviceID, newOwner.String(), "8.5"))
	require.NoError(t, err)
	assert.Equal(t, newOwner, record.OwnerID)
}

func TestDeviceLifecycleService_Register_DecodeErrorsSkipStore(t *testing.T) {
	tests := []struct {
		name    string
		message string
		target  error
	}{
		{
			name:    "too few segments",
			message: `{"tag":"x","id":"y"}`,
			target:  domainerrors.ErrMalformedMessage,
		},
		{
			name:    "invalid device id",
			message: deviceMessage(entity.IntentRegister, "not-a-uuid", exampleOwnerID, "5"),
			target:  domainerrors.ErrInvalidIdentifier,
		},
		{
			name:    "urn device id",
			message: deviceMessage(entity.IntentRegister, "urn:uuid:"+exampleDeviceID, exampleOwnerID, "5"),
			target:  domainerrors.ErrInvalidIdentifier,
		},
		{
			name:    "invalid owner id",
			message: deviceMessage(entity.IntentRegister, exampleDeviceID, "owner", "5"),
			target:  domainerrors.ErrInvalidIdentifier,
		},
		{
			name:    "negative consumption",
			message: deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "-3"),
			target:  domainerrors.ErrInvalidNumber,
		},
		{
			name:    "unparsable consumption",
			message: deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "lots"),
			target:  domainerrors.ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any store call fails the test.
			fx := createTestDeviceLifecycleService(t)

			record, err := fx.service.Register(context.Background(), tt.message)
			require.Error(t, err)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, tt.target))
			assert.True(t, domainerrors.IsDecodeFailure(err))
		})
	}
}

func TestDeviceLifecycleService_Register_StoreFailure(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to save device")

	fx.deviceRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil, storeErr)

	record, err := fx.service.Register(ctx, deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5"))
	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, domainerrors.IsStoreFailure(err))
	assert.Contains(t, err.Error(), "failed to save device")
}

func TestDeviceLifecycleService_Delete_Success(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeleteByID(ctx, uuid.MustParse(exampleDeviceID)).
		Return(nil)

	err := fx.service.Delete(ctx, deviceMessage(entity.IntentDelete, exampleDeviceID, exampleOwnerID, "5"))
	require.NoError(t, err)
}

func TestDeviceLifecycleService_Delete_OnlyNeedsID(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeleteByID(ctx, uuid.MustParse(exampleDeviceID)).
		Return(nil)

	err := fx.service.Delete(ctx, `{"type":"delete","id":"`+exampleDeviceID+`"}`)
	require.NoError(t, err)
}

func TestDeviceLifecycleService_Delete_InvalidID(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	err := fx.service.Delete(context.Background(), `{"type":"delete","id":"abc"}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
}

func TestDeviceLifecycleService_Delete_StoreError(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeleteByID(ctx, mock.Anything).
		Return(errors.New("database error"))

	err := fx.service.Delete(ctx, deviceMessage(entity.IntentDelete, exampleDeviceID, exampleOwnerID, "5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}

func TestDeviceLifecycleService_ListForOwner(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), OwnerID: ownerID, MaxHourlyConsumption: 1},
		{ID: uuid.New(), OwnerID: ownerID, MaxHourlyConsumption: 2},
	}

	fx.deviceRepo.EXPECT().
		FindAllByOwner(ctx, ownerID).
		Return(devices, nil)

	records, err := fx.service.ListForOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, devices[0].ID, records[0].ID)
	assert.Equal(t, devices[1].ID, records[1].ID)
}

func TestDeviceLifecycleService_ListForOwner_Error(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindAllByOwner(ctx, ownerID).
		Return(nil, errors.New("database error"))

	records, err := fx.service.ListForOwner(ctx, ownerID)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "failed to find devices by owner")
}

func TestDeviceLifecycleService_Handle_Dispatch(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	ctx := context.Background()
	message := deviceMessage(entity.IntentRegister, exampleDeviceID, exampleOwnerID, "5")

	fx.deviceRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(_ context.Context, device *entity.Device) (*entity.Device, error) {
			return device, nil
		}).
		Times(2)
	fx.deviceRepo.EXPECT().
		DeleteByID(ctx, uuid.MustParse(exampleDeviceID)).
		Return(nil).
		Once()

	for _, intent := range []entity.Intent{entity.IntentRegister, entity.IntentUpdate} {
		result, err := fx.service.Handle(ctx, usecase.DeviceCommand{Intent: intent, Payload: message})
		require.NoError(t, err)
		assert.Equal(t, intent, result.Intent)
		require.NotNil(t, result.Record)
		assert.Equal(t, uuid.MustParse(exampleDeviceID), result.Record.ID)
	}

	result, err := fx.service.Handle(ctx, usecase.DeviceCommand{Intent: entity.IntentDelete, Payload: message})
	require.NoError(t, err)
	assert.Equal(t, entity.IntentDelete, result.Intent)
	assert.Nil(t, result.Record)
}

func TestDeviceLifecycleService_Handle_UnknownIntent(t *testing.T) {
	fx := createTestDeviceLifecycleService(t)

	result, err := fx.service.Handle(context.Background(), usecase.DeviceCommand{Intent: "archive", Payload: "{}"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownIntent))
}
