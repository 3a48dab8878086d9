package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Rows are hard-deleted; a deleted device leaves no trace.
type DeviceModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID              uuid.UUID `gorm:"type:uuid;not null;index"`
	MaxHourlyConsumption float64   `gorm:"type:double precision;not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
