// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/domain/repository"
	"monitoring/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Save inserts the device or overwrites every mutable column of the row with the same ID.
// The stored row, including the original created_at, is returned by the same statement.
func (repo *deviceRepository) Save(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_id", "max_hourly_consumption", "updated_at"}),
		}).
		Clauses(clause.Returning{}).
		Create(deviceM).Error
	if err != nil {
		return nil, classifyWriteError(err, "failed to upsert device")
	}

	return toDeviceDomain(deviceM), nil
}

// DeleteByID removes the device row. Deleting an unknown ID is not an error.
func (repo *deviceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		Delete(&model.DeviceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete device")
	}

	return nil
}

// FindAllByOwner retrieves all devices of an owner, oldest first.
func (repo *deviceRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		MaxHourlyConsumption: data.MaxHourlyConsumption,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		MaxHourlyConsumption: data.MaxHourlyConsumption,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
