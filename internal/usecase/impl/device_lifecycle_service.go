// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"monitoring/internal/codec/devicemsg"
	deliverycontext "monitoring/internal/delivery/context"
	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/domain/repository"
	"monitoring/internal/usecase"
	"monitoring/internal/usecase/mapper"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceLifecycleService struct {
	deviceRepo repository.DeviceRepository
	decoder    devicemsg.Decoder
	logger     *slog.Logger
}

// DeviceLifecycleServiceParams holds dependencies for the device lifecycle service, injected by Fx.
type DeviceLifecycleServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Decoder    devicemsg.Decoder
	Logger     *slog.Logger
}

// NewDeviceLifecycleService creates a new device lifecycle service instance
func NewDeviceLifecycleService(params DeviceLifecycleServiceParams) usecase.DeviceLifecycleUsecase {
	decoder := params.Decoder
	if decoder == nil {
		decoder = devicemsg.NewKeyedDecoder()
	}

	return &deviceLifecycleService{
		deviceRepo: params.DeviceRepo,
		decoder:    decoder,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *deviceLifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Handle dispatches a command by intent
func (s *deviceLifecycleService) Handle(ctx context.Context, cmd usecase.DeviceCommand) (*usecase.DeviceCommandResult, error) {
	switch {
	case cmd.Intent.IsUpsert():
		record, err := s.upsert(ctx, cmd.Intent, cmd.Payload)
		if err != nil {
			return nil, err
		}

		return &usecase.DeviceCommandResult{Intent: cmd.Intent, Record: record}, nil

	case cmd.Intent == entity.IntentDelete:
		if err := s.Delete(ctx, cmd.Payload); err != nil {
			return nil, err
		}

		return &usecase.DeviceCommandResult{Intent: cmd.Intent}, nil

	default:
		return nil, domainerrors.ErrUnknownIntent.WithDetails(cmd.Intent.String())
	}
}

// Register decodes a device message and upserts the device
func (s *deviceLifecycleService) Register(ctx context.Context, message string) (*usecase.DeviceRecord, error) {
	return s.upsert(ctx, entity.IntentRegister, message)
}

// Update decodes a device message and upserts the device
func (s *deviceLifecycleService) Update(ctx context.Context, message string) (*usecase.DeviceRecord, error) {
	return s.upsert(ctx, entity.IntentUpdate, message)
}

// upsert is the single pipeline behind register and update; intent is only a log label.
func (s *deviceLifecycleService) upsert(ctx context.Context, intent entity.Intent, message string) (*usecase.DeviceRecord, error) {
	raw, err := s.decoder.DecodeRecord(message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode device message")
	}

	record, err := mapper.ToRecord(raw.ID, raw.OwnerID, raw.MaxHourlyConsumption)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map device message")
	}

	saved, err := s.deviceRepo.Save(ctx, mapper.ToEntity(record))
	if err != nil {
		return nil, errors.Wrap(err, "failed to save device")
	}

	s.log(ctx).Info("Device upserted",
		slog.String("intent", intent.String()),
		slog.String("device_id", saved.ID.String()),
		slog.String("owner_id", saved.OwnerID.String()),
	)

	return mapper.FromEntity(saved), nil
}

// Delete decodes the device ID of a message and removes the device
func (s *deviceLifecycleService) Delete(ctx context.Context, message string) error {
	rawID, err := s.decoder.DecodeID(message)
	if err != nil {
		return errors.Wrap(err, "failed to decode device message")
	}

	id, err := mapper.ParseID(rawID)
	if err != nil {
		return errors.Wrap(err, "failed to map device message")
	}

	if err := s.deviceRepo.DeleteByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	s.log(ctx).Info("Device deleted", slog.String("device_id", id.String()))

	return nil
}

// ListForOwner returns every device owned by ownerID
func (s *deviceLifecycleService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*usecase.DeviceRecord, error) {
	devices, err := s.deviceRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	return mapper.FromEntities(devices), nil
}
